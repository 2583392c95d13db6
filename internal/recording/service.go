// Package recording handles studio sessions that turn written songs into
// releasable recordings.
package recording

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/healthmood"
	"github.com/cadencehq/cadence-server/internal/logger"
)

const (
	songWeight        = 0.4
	performanceWeight = 0.3
	productionWeight  = 0.2
	studioWeight      = 0.1

	productionXPPerHour = 10
	tiringSessionHours  = 4
	goodTakeMoodBoost   = 5
	poorTakeMoodLoss    = 3
)

// Service defines recording business logic. Methods mutate the passed state
// in place; the caller owns locking and persistence.
type Service interface {
	Record(ctx context.Context, state *domain.GameState, songID uuid.UUID, tier domain.StudioTier, hours int) (domain.Recording, error)
}

type service struct {
	now func() time.Time
}

// NewService creates a new recording service.
func NewService() Service {
	return &service{now: time.Now}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(now func() time.Time) Service {
	return &service{now: now}
}

// Record books studio time for a song, paying the tier's hourly rate.
// Recording quality mixes the song, performance and production skills and
// the studio ceiling, scaled by the health/mood modifier and capped by the
// tier. Each song can be recorded once.
func (s *service) Record(ctx context.Context, state *domain.GameState, songID uuid.UUID, tier domain.StudioTier, hours int) (domain.Recording, error) {
	log := logger.FromContext(ctx)

	if hours < 1 {
		return domain.Recording{}, fmt.Errorf("%w: session hours must be positive", domain.ErrValidationFailed)
	}
	if !tier.Valid() {
		return domain.Recording{}, fmt.Errorf("%w: unknown studio tier %q", domain.ErrValidationFailed, tier)
	}
	sng := state.Song(songID)
	if sng == nil {
		return domain.Recording{}, fmt.Errorf("%w: %s", domain.ErrSongNotFound, songID)
	}
	if sng.IsRecorded() {
		return domain.Recording{}, fmt.Errorf("%w: song %q already has a recording", domain.ErrInvalidTransition, sng.Title)
	}

	cost := tier.HourlyRate().Mul(decimal.NewFromInt(int64(hours)))
	if err := state.Wallet.DeductExpense(cost); err != nil {
		return domain.Recording{}, fmt.Errorf("book %s studio: %w", tier, err)
	}

	quality := recordingQuality(
		sng.Quality,
		state.SkillLevel(domain.SkillPerformance),
		state.SkillLevel(domain.SkillProduction),
		tier,
		state.Player.Health,
		state.Player.Mood,
	)

	rec := domain.Recording{
		ID:         uuid.New(),
		SongID:     songID,
		PlayerID:   state.Player.ID,
		Quality:    quality,
		StudioTier: tier,
		RecordedAt: s.now(),
	}
	state.AddRecording(rec)
	sng.RecordingID = &rec.ID

	if prod := state.Skill(domain.SkillProduction); prod != nil {
		prod.AddXP(hours * productionXPPerHour)
	}

	if hours > tiringSessionHours {
		state.Player.AdjustHealth(-(hours - tiringSessionHours))
	}
	switch {
	case quality >= 70:
		state.Player.AdjustMood(goodTakeMoodBoost)
	case quality < 40:
		state.Player.AdjustMood(-poorTakeMoodLoss)
	}

	log.Info("Song recorded",
		"title", sng.Title,
		"tier", tier,
		"hours", hours,
		"cost", cost,
		"quality", quality)
	return rec, nil
}

// recordingQuality mixes the inputs, applies the health/mood modifier and
// clamps to the studio tier's ceiling.
func recordingQuality(songQuality, performance, production int, tier domain.StudioTier, health, mood int) int {
	base := float64(songQuality)*songWeight +
		float64(performance)*performanceWeight +
		float64(production)*productionWeight +
		float64(tier.QualityCap())*studioWeight

	q := int(base * healthmood.RecordingQualityModifier(health, mood))
	if q < 0 {
		return 0
	}
	if ceiling := tier.QualityCap(); q > ceiling {
		return ceiling
	}
	return q
}
