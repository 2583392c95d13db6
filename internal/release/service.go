// Package release handles publishing recordings as singles or albums and
// the weekly streaming pass that accrues plays and royalties.
package release

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/logger"
	"github.com/cadencehq/cadence-server/internal/utils"
)

const (
	singleFameDivisor = 10
	albumFameDivisor  = 5

	playsPerFamePoint    = 10
	playsPerQualityPoint = 5
	revenuePerPlayScale  = 1000
)

// StreamingResult reports one weekly streaming pass.
type StreamingResult struct {
	ReleasesProcessed int             `json:"releases_processed"`
	TotalPlays        int             `json:"total_plays"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

// Service defines release business logic. Methods mutate the passed state in
// place; the caller owns locking and persistence.
type Service interface {
	Publish(ctx context.Context, state *domain.GameState, title string, releaseType domain.ReleaseType, recordingIDs []uuid.UUID) (domain.Release, error)
	ProcessWeeklyStreaming(ctx context.Context, state *domain.GameState) (StreamingResult, error)
}

type service struct {
	rnd func() float64
	now func() time.Time
}

// NewService creates a new release service.
func NewService() Service {
	return &service{rnd: utils.RandomFloat, now: time.Now}
}

// NewServiceWithRand creates a service with injected randomness and clock
// for tests.
func NewServiceWithRand(rnd func() float64, now func() time.Time) Service {
	return &service{rnd: rnd, now: now}
}

// Publish releases a set of recordings. Each recording may appear on one
// release only; publishing marks recordings and their songs released and
// grants fame from the average quality, albums at double rate.
func (s *service) Publish(ctx context.Context, state *domain.GameState, title string, releaseType domain.ReleaseType, recordingIDs []uuid.UUID) (domain.Release, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Release{}, fmt.Errorf("%w: release title is required", domain.ErrValidationFailed)
	}
	if !releaseType.Valid() {
		return domain.Release{}, fmt.Errorf("%w: unknown release type %q", domain.ErrValidationFailed, releaseType)
	}
	if len(recordingIDs) < releaseType.MinTracks() {
		return domain.Release{}, fmt.Errorf("%w: %s needs at least %d tracks, got %d",
			domain.ErrValidationFailed, releaseType, releaseType.MinTracks(), len(recordingIDs))
	}

	seen := make(map[uuid.UUID]struct{}, len(recordingIDs))
	for _, id := range recordingIDs {
		rec := state.Recording(id)
		if rec == nil {
			return domain.Release{}, fmt.Errorf("%w: %s", domain.ErrRecordingNotFound, id)
		}
		if rec.IsReleased {
			return domain.Release{}, fmt.Errorf("%w: recording %s already released", domain.ErrInvalidTransition, id)
		}
		if _, dup := seen[id]; dup {
			return domain.Release{}, fmt.Errorf("%w: duplicate recording %s", domain.ErrValidationFailed, id)
		}
		seen[id] = struct{}{}
	}

	rel := domain.Release{
		ID:           uuid.New(),
		PlayerID:     state.Player.ID,
		Title:        title,
		Type:         releaseType,
		RecordingIDs: append([]uuid.UUID(nil), recordingIDs...),
		ReleasedAt:   s.now(),
		TotalRevenue: decimal.Zero,
	}
	state.AddRelease(rel)

	for _, id := range recordingIDs {
		rec := state.Recording(id)
		rec.IsReleased = true
		if sng := state.Song(rec.SongID); sng != nil {
			sng.IsReleased = true
		}
	}

	avgQuality := averageQuality(state, recordingIDs)
	fameGain := avgQuality / singleFameDivisor
	if releaseType == domain.ReleaseAlbum {
		fameGain = avgQuality / albumFameDivisor
	}
	state.Player.AddFame(fameGain)

	log.Info("Release published",
		"title", title,
		"type", releaseType,
		"tracks", len(recordingIDs),
		"avg_quality", avgQuality,
		"fame_gained", fameGain)
	return rel, nil
}

// ProcessWeeklyStreaming accrues a week of plays and royalties on every
// release. Plays scale with fame and average quality with a ±20% random
// swing; royalties pay out at avgQuality/1000 per play.
func (s *service) ProcessWeeklyStreaming(ctx context.Context, state *domain.GameState) (StreamingResult, error) {
	log := logger.FromContext(ctx)
	result := StreamingResult{TotalRevenue: decimal.Zero}

	for i := range state.Releases {
		rel := &state.Releases[i]
		avgQuality := averageQuality(state, rel.RecordingIDs)

		basePlays := state.Player.Fame*playsPerFamePoint + avgQuality*playsPerQualityPoint
		swing := 0.8 + s.rnd()*0.4
		weeklyPlays := int(float64(basePlays) * swing)
		if weeklyPlays < 0 {
			weeklyPlays = 0
		}

		revenuePerPlay := decimal.NewFromInt(int64(avgQuality)).Div(decimal.NewFromInt(revenuePerPlayScale))
		weeklyRevenue := revenuePerPlay.Mul(decimal.NewFromInt(int64(weeklyPlays)))

		rel.TotalPlays += weeklyPlays
		rel.TotalRevenue = rel.TotalRevenue.Add(weeklyRevenue)
		state.Wallet.AddIncome(weeklyRevenue)

		result.ReleasesProcessed++
		result.TotalPlays += weeklyPlays
		result.TotalRevenue = result.TotalRevenue.Add(weeklyRevenue)
	}

	if result.ReleasesProcessed > 0 {
		log.Info("Weekly streaming processed",
			"releases", result.ReleasesProcessed,
			"plays", result.TotalPlays,
			"revenue", result.TotalRevenue)
	}
	return result, nil
}

func averageQuality(state *domain.GameState, recordingIDs []uuid.UUID) int {
	if len(recordingIDs) == 0 {
		return 0
	}
	total, count := 0, 0
	for _, id := range recordingIDs {
		if rec := state.Recording(id); rec != nil {
			total += rec.Quality
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / count
}
