package housing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/domain"
)

var testTime = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestState(balance int64) *domain.GameState {
	player := domain.NewPlayer("Test Musician", "avatar_1", catalog.CityIstanbul, testTime)
	state := domain.NewGame(player)
	state.Wallet.Balance = decimal.NewFromInt(balance)
	return state
}

func serviceAt(at time.Time) Service {
	return NewServiceWithClock(catalog.Default(), func() time.Time { return at })
}

func TestRentChargesFirstWeekWithCityMultiplier(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(500)

	// Istanbul multiplier 0.7: studio costs 200 * 0.7 = 140.
	h, err := svc.Rent(context.Background(), state, domain.HousingStudio)
	require.NoError(t, err)

	assert.Equal(t, "360", state.Wallet.Balance.String())
	assert.Equal(t, domain.HousingStudio, h.HousingType)
	assert.Equal(t, testTime.AddDate(0, 0, 7), h.RentPaidUntil)
	require.NotNil(t, state.Housing)
	assert.Equal(t, 50, state.Player.Reputation) // studio grants no bonus
}

func TestRentGrantsReputationBonus(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(2000)

	_, err := svc.Rent(context.Background(), state, domain.HousingTwoBedroom)
	require.NoError(t, err)

	assert.Equal(t, 60, state.Player.Reputation)
}

func TestRentInsufficientFunds(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(100)

	_, err := svc.Rent(context.Background(), state, domain.HousingPenthouse)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Nil(t, state.Housing)
}

func TestUpgradeProratesRentDifference(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(2000)
	ctx := context.Background()

	_, err := svc.Rent(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	// Full 7 days left: difference (400-200)*0.7 = 140 per week, prorated
	// over 7 of 7 days = 140.
	cost, err := svc.Upgrade(ctx, state, domain.HousingOneBedroom)
	require.NoError(t, err)

	assert.True(t, cost.Equal(decimal.NewFromInt(140)), "cost = %s", cost)
	assert.Equal(t, domain.HousingOneBedroom, state.Housing.HousingType)
	assert.Equal(t, 55, state.Player.Reputation)
}

func TestUpgradeRejectsSameOrLowerTier(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(5000)
	ctx := context.Background()

	_, err := svc.Rent(ctx, state, domain.HousingTwoBedroom)
	require.NoError(t, err)

	_, err = svc.Upgrade(ctx, state, domain.HousingTwoBedroom)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.Upgrade(ctx, state, domain.HousingStudio)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpgradeWithoutHousing(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(5000)

	_, err := svc.Upgrade(context.Background(), state, domain.HousingPenthouse)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDowngradeCreditsProratedDifference(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(2000)
	ctx := context.Background()

	_, err := svc.Rent(ctx, state, domain.HousingOneBedroom)
	require.NoError(t, err)
	balanceAfterRent := state.Wallet.Balance

	credit, err := svc.Downgrade(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	assert.True(t, credit.Equal(decimal.NewFromInt(140)), "credit = %s", credit)
	assert.True(t, state.Wallet.Balance.Equal(balanceAfterRent.Add(credit)))
	assert.Equal(t, domain.HousingStudio, state.Housing.HousingType)
	assert.Equal(t, 50, state.Player.Reputation)
}

func TestPayRentExtendsCoveredPeriod(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(2000)
	ctx := context.Background()

	_, err := svc.Rent(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	// Paying two weeks early extends from the existing paid-until date.
	total, err := svc.PayRent(ctx, state, 2)
	require.NoError(t, err)

	assert.True(t, total.Equal(decimal.NewFromInt(280)), "total = %s", total)
	assert.Equal(t, testTime.AddDate(0, 0, 21), state.Housing.RentPaidUntil)
}

func TestPayRentWhileOverdueRestartsPeriod(t *testing.T) {
	state := newTestState(2000)
	ctx := context.Background()

	_, err := serviceAt(testTime).Rent(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	late := testTime.AddDate(0, 0, 10)
	_, err = serviceAt(late).PayRent(ctx, state, 1)
	require.NoError(t, err)

	assert.Equal(t, late.AddDate(0, 0, 7), state.Housing.RentPaidUntil)
}

func TestPayRentValidation(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(2000)
	ctx := context.Background()

	_, err := svc.PayRent(ctx, state, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Rent(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	_, err = svc.PayRent(ctx, state, 0)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestProcessUpkeepAppliesPassiveMood(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(5000)
	ctx := context.Background()

	_, err := svc.Rent(ctx, state, domain.HousingPenthouse)
	require.NoError(t, err)
	moodBefore := state.Player.Mood

	result, err := svc.ProcessUpkeep(ctx, state)
	require.NoError(t, err)

	assert.Equal(t, 5, result.MoodBonus)
	assert.Equal(t, moodBefore+5, state.Player.Mood)
	assert.False(t, result.AutoPaid)
}

func TestProcessUpkeepAutoPaysOverdueRent(t *testing.T) {
	state := newTestState(2000)
	ctx := context.Background()

	_, err := serviceAt(testTime).Rent(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	later := testTime.AddDate(0, 0, 8)
	result, err := serviceAt(later).ProcessUpkeep(ctx, state)
	require.NoError(t, err)

	assert.True(t, result.AutoPaid)
	assert.True(t, result.RentPaid.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, later.AddDate(0, 0, 7), state.Housing.RentPaidUntil)
}

func TestProcessUpkeepForcesDowngradeAfterEvictionWindow(t *testing.T) {
	state := newTestState(2000)
	ctx := context.Background()

	_, err := serviceAt(testTime).Rent(ctx, state, domain.HousingOneBedroom)
	require.NoError(t, err)

	// Broke and two weeks overdue.
	state.Wallet.Balance = decimal.NewFromInt(10)
	later := testTime.AddDate(0, 0, 21)

	result, err := serviceAt(later).ProcessUpkeep(ctx, state)
	require.NoError(t, err)

	assert.True(t, result.ForcedDowngrade)
	assert.Equal(t, domain.HousingStudio, state.Housing.HousingType)
	assert.Equal(t, later.AddDate(0, 0, 7), state.Housing.RentPaidUntil)
	assert.Equal(t, 50, state.Player.Reputation)
}

func TestProcessUpkeepGraceBeforeEviction(t *testing.T) {
	state := newTestState(2000)
	ctx := context.Background()

	_, err := serviceAt(testTime).Rent(ctx, state, domain.HousingOneBedroom)
	require.NoError(t, err)

	// Broke but only three days overdue: no downgrade yet.
	state.Wallet.Balance = decimal.NewFromInt(10)
	later := testTime.AddDate(0, 0, 10)

	result, err := serviceAt(later).ProcessUpkeep(ctx, state)
	require.NoError(t, err)

	assert.False(t, result.ForcedDowngrade)
	assert.Equal(t, domain.HousingOneBedroom, state.Housing.HousingType)
}

func TestProcessUpkeepWithoutHousing(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(500)

	result, err := svc.ProcessUpkeep(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, result.AutoPaid)
	assert.Zero(t, result.MoodBonus)
}

func TestRestQualityMultiplier(t *testing.T) {
	svc := serviceAt(testTime)
	state := newTestState(5000)

	assert.Equal(t, 1.0, svc.RestQualityMultiplier(state))

	_, err := svc.Rent(context.Background(), state, domain.HousingTwoBedroom)
	require.NoError(t, err)
	assert.Equal(t, 1.4, svc.RestQualityMultiplier(state))
}

func TestRentWarning(t *testing.T) {
	state := newTestState(2000)
	ctx := context.Background()

	assert.Empty(t, serviceAt(testTime).RentWarning(state))

	_, err := serviceAt(testTime).Rent(ctx, state, domain.HousingStudio)
	require.NoError(t, err)

	assert.Empty(t, serviceAt(testTime.AddDate(0, 0, 2)).RentWarning(state))
	assert.Contains(t, serviceAt(testTime.AddDate(0, 0, 6)).RentWarning(state), "due in")
	assert.Contains(t, serviceAt(testTime.AddDate(0, 0, 9)).RentWarning(state), "overdue")
	assert.Contains(t, serviceAt(testTime.AddDate(0, 0, 15)).RentWarning(state), "Eviction")
}
