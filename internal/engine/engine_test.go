package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/repository"
)

var gameStart = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, now time.Time) (*Engine, *repository.MemoryStore, uuid.UUID) {
	t.Helper()
	store := repository.NewMemoryStore()
	eng := NewWithClock(catalog.Default(), store, Options{},
		func() time.Time { return now },
		func() float64 { return 0.5 })

	state, err := eng.NewGame(context.Background(), "Test Musician", "avatar_1", catalog.CityLosAngeles, gameStart)
	require.NoError(t, err)
	return eng, store, state.Player.ID
}

func TestNewGameInitialState(t *testing.T) {
	eng, store, playerID := newTestEngine(t, gameStart)

	state, err := eng.State()
	require.NoError(t, err)
	assert.Equal(t, domain.StartingHealth, state.Player.Health)
	assert.Equal(t, domain.StartingMood, state.Player.Mood)
	assert.True(t, state.Wallet.Balance.Equal(domain.StartingBalance))
	assert.Len(t, state.Skills, len(domain.AllSkillTypes))

	// The initial snapshot is already persisted.
	saved, err := store.LoadPlayerState(context.Background(), playerID)
	require.NoError(t, err)
	assert.Equal(t, playerID, saved.Player.ID)
}

func TestNewGameUnknownCity(t *testing.T) {
	store := repository.NewMemoryStore()
	eng := New(catalog.Default(), store, Options{})

	_, err := eng.NewGame(context.Background(), "Test Musician", "avatar_1", uuid.New(), gameStart)
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestOperationsRequireLoadedGame(t *testing.T) {
	eng := New(catalog.Default(), repository.NewMemoryStore(), Options{})

	err := eng.QuitJob(context.Background())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = eng.State()
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func catalogItemID(t *testing.T, name string) uuid.UUID {
	t.Helper()
	for _, item := range catalog.Default().EquipmentItems() {
		if item.Name == name {
			return item.ID
		}
	}
	t.Fatalf("no catalog item named %q", name)
	return uuid.Nil
}

func TestFailedOperationLeavesStateUntouched(t *testing.T) {
	eng, _, _ := newTestEngine(t, gameStart)
	ctx := context.Background()

	// A Steinway is far beyond the starting balance.
	_, err := eng.PurchaseEquipment(ctx, catalogItemID(t, "Steinway Grand Piano"))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	state, err := eng.State()
	require.NoError(t, err)
	assert.True(t, state.Wallet.Balance.Equal(domain.StartingBalance))
	assert.Empty(t, state.Inventory)
}

func TestSuccessfulOperationPersists(t *testing.T) {
	eng, store, playerID := newTestEngine(t, gameStart)
	ctx := context.Background()

	item, err := eng.PurchaseEquipment(ctx, catalogItemID(t, "USB Microphone"))
	require.NoError(t, err)
	assert.Equal(t, domain.EquipMicrophone, item.EquipmentType)

	saved, err := store.LoadPlayerState(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "420", saved.Wallet.Balance.String())
	require.Len(t, saved.Inventory, 1)
}

func TestLoadRestoresSnapshot(t *testing.T) {
	eng, store, playerID := newTestEngine(t, gameStart)
	ctx := context.Background()

	_, err := eng.StartJob(ctx, domain.JobBarista)
	require.NoError(t, err)

	other := NewWithClock(catalog.Default(), store, Options{},
		func() time.Time { return gameStart }, func() float64 { return 0.5 })
	require.NoError(t, other.Load(ctx, playerID))

	state, err := other.State()
	require.NoError(t, err)
	require.NotNil(t, state.CurrentJob)
	assert.Equal(t, domain.JobBarista, *state.CurrentJob)
}

func TestTickThroughEngine(t *testing.T) {
	eng, store, playerID := newTestEngine(t, gameStart)
	ctx := context.Background()

	err := eng.SetActivity(ctx, domain.SlotPrimaryFocus,
		domain.Activity{Kind: domain.ActivityPractice, Instrument: domain.SkillGuitar})
	require.NoError(t, err)

	// An engine an hour later over the same store sees the accrued hour.
	hourLater := NewWithClock(catalog.Default(), store, Options{},
		func() time.Time { return gameStart.Add(time.Hour) }, func() float64 { return 0.5 })
	require.NoError(t, hourLater.Load(ctx, playerID))

	result, err := hourLater.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SlotsProcessed)

	after, err := hourLater.State()
	require.NoError(t, err)
	assert.Equal(t, 11, after.Skill(domain.SkillGuitar).CurrentXP)
}

func TestCreativePipelineThroughEngine(t *testing.T) {
	eng, _, _ := newTestEngine(t, gameStart)
	ctx := context.Background()

	sng, err := eng.CreateSong(ctx, "First Light", domain.GenreRock, domain.SongUpbeat, domain.SkillGuitar)
	require.NoError(t, err)
	second, err := eng.CreateSong(ctx, "Night Drive", domain.GenreRock, domain.SongMelancholic, domain.SkillGuitar)
	require.NoError(t, err)
	third, err := eng.CreateSong(ctx, "Last Call", domain.GenreRock, domain.SongUpbeat, domain.SkillGuitar)
	require.NoError(t, err)

	sl, err := eng.CreateSetlist(ctx, "Opening Set", []uuid.UUID{sng.ID, second.ID, third.ID})
	require.NoError(t, err)

	sl, err = eng.RehearseSetlist(ctx, sl.ID, 2)
	require.NoError(t, err)
	assert.Greater(t, sl.Quality, 0)

	rec, err := eng.RecordSong(ctx, sng.ID, domain.StudioBasic, 1)
	require.NoError(t, err)

	rel, err := eng.PublishRelease(ctx, "Debut", domain.ReleaseSingle, []uuid.UUID{rec.ID})
	require.NoError(t, err)
	assert.Equal(t, "Debut", rel.Title)

	state, err := eng.State()
	require.NoError(t, err)
	assert.True(t, state.Songs[0].IsReleased)
	assert.Greater(t, state.Player.Fame, 0)
}

func TestReadAccessors(t *testing.T) {
	eng, _, _ := newTestEngine(t, gameStart)
	ctx := context.Background()

	_, err := eng.StartJob(ctx, domain.JobWaiter)
	require.NoError(t, err)

	pending, err := eng.PendingPayments()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].Amount.Equal(decimal.NewFromInt(200)))

	next, err := eng.NextPaymentDate()
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.True(t, next.Equal(gameStart.AddDate(0, 0, 7)))

	value, err := eng.TotalInventoryValue()
	require.NoError(t, err)
	assert.True(t, value.IsZero())

	action, err := eng.RecommendedAction()
	require.NoError(t, err)
	assert.NotEmpty(t, action)
}
