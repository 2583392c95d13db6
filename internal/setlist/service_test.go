package setlist

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence-server/internal/domain"
)

var testTime = time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

func newTestService() (Service, *domain.GameState) {
	svc := NewServiceWithClock(func() time.Time { return testTime })
	player := domain.NewPlayer("Test Musician", "avatar_1", uuid.New(), testTime)
	return svc, domain.NewGame(player)
}

func addSong(state *domain.GameState, quality int) uuid.UUID {
	sng := domain.Song{
		ID:        uuid.New(),
		AuthorID:  state.Player.ID,
		Title:     "Test Song",
		Genre:     domain.GenreRock,
		Mood:      domain.SongEnergetic,
		Quality:   quality,
		CreatedAt: testTime,
	}
	state.AddSong(sng)
	return sng.ID
}

func TestCreateSetlistAveragesSongQuality(t *testing.T) {
	svc, state := newTestService()
	ids := []uuid.UUID{addSong(state, 40), addSong(state, 60), addSong(state, 50)}

	sl, err := svc.Create(context.Background(), state, "Opening Night", ids)
	require.NoError(t, err)

	assert.Equal(t, 50, sl.Quality)
	assert.Equal(t, 3, sl.SongCount())
	assert.True(t, sl.IsReady())
	require.Len(t, state.Setlists, 1)
}

func TestCreateSetlistBelowReadyThreshold(t *testing.T) {
	svc, state := newTestService()
	ids := []uuid.UUID{addSong(state, 10), addSong(state, 20), addSong(state, 30)}

	sl, err := svc.Create(context.Background(), state, "Rough Cuts", ids)
	require.NoError(t, err)

	// Average quality 20 stays below the ready threshold.
	assert.False(t, sl.IsReady())
}

func TestCreateSetlistRequiresMinimumSongs(t *testing.T) {
	svc, state := newTestService()
	ctx := context.Background()
	a, b := addSong(state, 50), addSong(state, 60)

	for _, ids := range [][]uuid.UUID{nil, {a}, {a, b}} {
		_, err := svc.Create(ctx, state, "Short Set", ids)
		assert.ErrorIs(t, err, domain.ErrValidationFailed)
	}
	assert.Empty(t, state.Setlists)
}

func TestCreateSetlistValidation(t *testing.T) {
	svc, state := newTestService()
	ctx := context.Background()
	a, b := addSong(state, 50), addSong(state, 60)

	_, err := svc.Create(ctx, state, "", []uuid.UUID{a, b, addSong(state, 70)})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, err = svc.Create(ctx, state, "Missing", []uuid.UUID{a, b, uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(ctx, state, "Doubled", []uuid.UUID{a, b, a})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestRehearseImprovesQuality(t *testing.T) {
	svc, state := newTestService()
	ids := []uuid.UUID{addSong(state, 40), addSong(state, 60), addSong(state, 50)}

	sl, err := svc.Create(context.Background(), state, "Main Set", ids)
	require.NoError(t, err)

	// Two hours: base 50 + rehearsal bonus 20.
	updated, err := svc.Rehearse(context.Background(), state, sl.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 70, updated.Quality)
	assert.InDelta(t, 2.0, updated.RehearsalHours, 0.001)
	assert.Equal(t, 10, state.Skill(domain.SkillPerformance).CurrentXP)
}

func TestRehearsalBonusCaps(t *testing.T) {
	svc, state := newTestService()
	ids := []uuid.UUID{addSong(state, 40), addSong(state, 60), addSong(state, 50)}

	sl, err := svc.Create(context.Background(), state, "Main Set", ids)
	require.NoError(t, err)

	// Ten hours caps the rehearsal bonus at 40.
	updated, err := svc.Rehearse(context.Background(), state, sl.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 90, updated.Quality)
}

func TestRehearseAddsPerformanceSkillBonus(t *testing.T) {
	svc, state := newTestService()
	state.Skill(domain.SkillPerformance).CurrentLevel = 50
	ids := []uuid.UUID{addSong(state, 40), addSong(state, 60), addSong(state, 50)}

	sl, err := svc.Create(context.Background(), state, "Main Set", ids)
	require.NoError(t, err)

	// base 50 + bonus 10 + performance 50*0.2 = 70.
	updated, err := svc.Rehearse(context.Background(), state, sl.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 70, updated.Quality)
}

func TestRehearseQualityCapsAtHundred(t *testing.T) {
	svc, state := newTestService()
	state.Skill(domain.SkillPerformance).CurrentLevel = 100
	ids := []uuid.UUID{addSong(state, 95), addSong(state, 95), addSong(state, 95)}

	sl, err := svc.Create(context.Background(), state, "Stadium Set", ids)
	require.NoError(t, err)

	updated, err := svc.Rehearse(context.Background(), state, sl.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Quality)
}

func TestRehearseValidation(t *testing.T) {
	svc, state := newTestService()
	ctx := context.Background()

	_, err := svc.Rehearse(ctx, state, uuid.New(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ids := []uuid.UUID{addSong(state, 50), addSong(state, 50), addSong(state, 50)}
	sl, err := svc.Create(ctx, state, "Main Set", ids)
	require.NoError(t, err)

	_, err = svc.Rehearse(ctx, state, sl.ID, 0)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}
