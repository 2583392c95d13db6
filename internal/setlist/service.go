// Package setlist handles show preparation: assembling songs into setlists
// and rehearsing them toward gig readiness.
package setlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/logger"
)

const (
	rehearsalBonusPerHour = 10
	maxRehearsalBonus     = 40
	performanceSkillRate  = 0.2
	rehearsalXPPerHour    = 5
)

// Service defines setlist business logic. Methods mutate the passed state in
// place; the caller owns locking and persistence.
type Service interface {
	Create(ctx context.Context, state *domain.GameState, name string, songIDs []uuid.UUID) (domain.Setlist, error)
	Rehearse(ctx context.Context, state *domain.GameState, setlistID uuid.UUID, hours float64) (domain.Setlist, error)
}

type service struct {
	now func() time.Time
}

// NewService creates a new setlist service.
func NewService() Service {
	return &service{now: time.Now}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(now func() time.Time) Service {
	return &service{now: now}
}

// Create assembles owned songs into a new setlist. Initial quality is the
// average song quality; rehearsal raises it from there.
func (s *service) Create(ctx context.Context, state *domain.GameState, name string, songIDs []uuid.UUID) (domain.Setlist, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Setlist{}, fmt.Errorf("%w: setlist name is required", domain.ErrValidationFailed)
	}
	if len(songIDs) < domain.SetlistMinSongs {
		return domain.Setlist{}, fmt.Errorf("%w: a setlist needs at least %d songs", domain.ErrValidationFailed, domain.SetlistMinSongs)
	}
	seen := make(map[uuid.UUID]struct{}, len(songIDs))
	for _, id := range songIDs {
		if state.Song(id) == nil {
			return domain.Setlist{}, fmt.Errorf("%w: %s", domain.ErrSongNotFound, id)
		}
		if _, dup := seen[id]; dup {
			return domain.Setlist{}, fmt.Errorf("%w: duplicate song %s", domain.ErrValidationFailed, id)
		}
		seen[id] = struct{}{}
	}

	now := s.now()
	sl := domain.Setlist{
		ID:        uuid.New(),
		PlayerID:  state.Player.ID,
		Name:      name,
		SongIDs:   append([]uuid.UUID(nil), songIDs...),
		Quality:   s.baseQuality(state, songIDs),
		CreatedAt: now,
		UpdatedAt: now,
	}
	state.AddSetlist(sl)

	log.Info("Setlist created", "name", name, "songs", len(songIDs), "quality", sl.Quality)
	return sl, nil
}

// Rehearse logs practice hours against a setlist and recomputes its quality:
// average song quality, plus up to 40 points of rehearsal bonus, plus a
// fifth of the performance skill level, capped at 100. Rehearsing grants
// performance XP.
func (s *service) Rehearse(ctx context.Context, state *domain.GameState, setlistID uuid.UUID, hours float64) (domain.Setlist, error) {
	log := logger.FromContext(ctx)

	if hours <= 0 {
		return domain.Setlist{}, fmt.Errorf("%w: rehearsal hours must be positive", domain.ErrValidationFailed)
	}
	sl := state.Setlist(setlistID)
	if sl == nil {
		return domain.Setlist{}, fmt.Errorf("%w: %s", domain.ErrSetlistNotFound, setlistID)
	}

	sl.RehearsalHours += hours

	bonus := int(sl.RehearsalHours * rehearsalBonusPerHour)
	if bonus > maxRehearsalBonus {
		bonus = maxRehearsalBonus
	}
	perfBonus := int(float64(state.SkillLevel(domain.SkillPerformance)) * performanceSkillRate)

	quality := s.baseQuality(state, sl.SongIDs) + bonus + perfBonus
	if quality > 100 {
		quality = 100
	}
	sl.Quality = quality
	sl.UpdatedAt = s.now()

	if perf := state.Skill(domain.SkillPerformance); perf != nil {
		perf.AddXP(int(hours * rehearsalXPPerHour))
	}

	log.Info("Setlist rehearsed", "name", sl.Name, "hours", hours, "quality", sl.Quality, "ready", sl.IsReady())
	return *sl, nil
}

func (s *service) baseQuality(state *domain.GameState, songIDs []uuid.UUID) int {
	if len(songIDs) == 0 {
		return 0
	}
	total := 0
	for _, id := range songIDs {
		if sng := state.Song(id); sng != nil {
			total += sng.Quality
		}
	}
	return total / len(songIDs)
}
