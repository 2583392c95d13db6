// Package song handles songwriting: quality rolls, XP grants and the mood
// lift of creative work.
package song

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/healthmood"
	"github.com/cadencehq/cadence-server/internal/logger"
	"github.com/cadencehq/cadence-server/internal/utils"
)

const (
	songwritingWeight = 0.4
	instrumentWeight  = 0.3
	moodWeight        = 0.2

	creationMoodBoost = 2
)

// Service defines songwriting business logic. Methods mutate the passed
// state in place; the caller owns locking and persistence.
type Service interface {
	Create(ctx context.Context, state *domain.GameState, title string, genre domain.MusicGenre, mood domain.SongMood, primaryInstrument domain.SkillType) (domain.Song, error)
}

type service struct {
	rnd func() float64
	now func() time.Time
}

// NewService creates a new song service.
func NewService() Service {
	return &service{rnd: utils.RandomFloat, now: time.Now}
}

// NewServiceWithRand creates a service with injected randomness and clock
// for tests.
func NewServiceWithRand(rnd func() float64, now func() time.Time) Service {
	return &service{rnd: rnd, now: now}
}

// Create writes a new song. Quality is rolled from songwriting skill, the
// primary instrument's skill and current mood, then scaled by the mood
// creativity modifier. Writing grants songwriting and instrument XP and a
// small mood boost.
func (s *service) Create(ctx context.Context, state *domain.GameState, title string, genre domain.MusicGenre, mood domain.SongMood, primaryInstrument domain.SkillType) (domain.Song, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Song{}, fmt.Errorf("%w: song title is required", domain.ErrValidationFailed)
	}
	instrumentSkill := state.Skill(primaryInstrument)
	if instrumentSkill == nil {
		return domain.Song{}, fmt.Errorf("%w: %s", domain.ErrSkillNotFound, primaryInstrument)
	}

	quality := s.rollQuality(state.SkillLevel(domain.SkillSongwriting), instrumentSkill.CurrentLevel, state.Player.Mood)

	sng := domain.Song{
		ID:        uuid.New(),
		AuthorID:  state.Player.ID,
		Title:     title,
		Genre:     genre,
		Mood:      mood,
		Quality:   quality,
		CreatedAt: s.now(),
	}
	state.AddSong(sng)

	if sw := state.Skill(domain.SkillSongwriting); sw != nil {
		sw.AddXP(20 + quality/2)
	}
	instrumentSkill.AddXP(5 + quality/10)
	state.Player.AdjustMood(creationMoodBoost)

	log.Info("Song written", "title", title, "quality", quality, "genre", genre)
	return sng, nil
}

// rollQuality mixes skill, mood and a small random variance, then applies
// the creativity modifier and clamps to 0-100.
func (s *service) rollQuality(songwriting, instrument, mood int) int {
	variance := (s.rnd()*20 - 10) * 0.1 // ±1 point
	base := float64(songwriting)*songwritingWeight +
		float64(instrument)*instrumentWeight +
		float64(mood)*moodWeight +
		variance
	q := int(base * healthmood.SongQualityModifier(mood))
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}
