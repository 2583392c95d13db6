package gear

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
)

var testTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService() (Service, *domain.GameState) {
	svc := NewServiceWithClock(catalog.Default(), func() time.Time { return testTime })
	player := domain.NewPlayer("Test Musician", "avatar_1", uuid.New(), testTime)
	return svc, domain.NewGame(player)
}

func ownedEquipment(t domain.EquipmentType, tier domain.EquipmentTier, basePrice int64, durability int) domain.Equipment {
	return domain.Equipment{
		ID:            uuid.New(),
		EquipmentType: t,
		Tier:          tier,
		Name:          "Test Gear",
		BasePrice:     decimal.NewFromInt(basePrice),
		Durability:    durability,
		PurchasedAt:   testTime,
	}
}

func TestPurchaseDeductsAndAddsInventory(t *testing.T) {
	svc, state := newTestService()

	// USB Microphone, 80.
	item := uuid.MustParse("20000000-0000-0000-0000-000000000013")
	owned, err := svc.Purchase(context.Background(), state, item)
	require.NoError(t, err)

	assert.Equal(t, "420", state.Wallet.Balance.String())
	assert.Equal(t, domain.EquipMicrophone, owned.EquipmentType)
	assert.Equal(t, domain.DurabilityMax, owned.Durability)
	assert.Equal(t, state.Player.ID, owned.OwnerID)
	require.Len(t, state.Inventory, 1)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	svc, state := newTestService()

	// Fender Stratocaster, 1200, starting balance is 500.
	item := uuid.MustParse("20000000-0000-0000-0000-000000000002")
	_, err := svc.Purchase(context.Background(), state, item)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "500", state.Wallet.Balance.String())
	assert.Empty(t, state.Inventory)
}

func TestPurchaseUnknownItem(t *testing.T) {
	svc, state := newTestService()

	_, err := svc.Purchase(context.Background(), state, uuid.New())
	assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
}

func TestRepairRestoresDurability(t *testing.T) {
	svc, state := newTestService()

	e := ownedEquipment(domain.EquipGuitar, domain.TierProfessional, 1200, 40)
	state.AddEquipment(e)

	// 1200 * 60/100 * 0.3 = 216.
	cost, err := svc.Repair(context.Background(), state, e.ID)
	require.NoError(t, err)

	assert.Equal(t, "216", cost.String())
	assert.Equal(t, "284", state.Wallet.Balance.String())
	assert.Equal(t, domain.DurabilityMax, state.Equipment(e.ID).Durability)
}

func TestRepairInsufficientFunds(t *testing.T) {
	svc, state := newTestService()

	e := ownedEquipment(domain.EquipPiano, domain.TierLegendary, 50000, 10)
	state.AddEquipment(e)

	_, err := svc.Repair(context.Background(), state, e.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 10, state.Equipment(e.ID).Durability)
}

func TestSellCreditsConditionScaledPrice(t *testing.T) {
	svc, state := newTestService()

	e := ownedEquipment(domain.EquipGuitar, domain.TierProfessional, 1200, 40)
	state.AddEquipment(e)

	// 1200 * 0.5 * 40/100 = 240.
	price, err := svc.Sell(context.Background(), state, e.ID)
	require.NoError(t, err)

	assert.Equal(t, "240", price.String())
	assert.Equal(t, "740", state.Wallet.Balance.String())
	assert.Empty(t, state.Inventory)
}

func TestSellUnknownEquipment(t *testing.T) {
	svc, state := newTestService()

	_, err := svc.Sell(context.Background(), state, uuid.New())
	assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
}

func TestBestBonusForSkillPicksHighestUsable(t *testing.T) {
	svc, state := newTestService()

	state.AddEquipment(ownedEquipment(domain.EquipGuitar, domain.TierBasic, 150, 100))        // 1.0
	state.AddEquipment(ownedEquipment(domain.EquipGuitar, domain.TierLegendary, 4500, 80))    // 1.2
	state.AddEquipment(ownedEquipment(domain.EquipGuitar, domain.TierProfessional, 1200, 5))  // broken
	state.AddEquipment(ownedEquipment(domain.EquipDrums, domain.TierLegendary, 8000, 100))    // other skill

	assert.InDelta(t, 1.2, svc.BestBonusForSkill(state, domain.SkillGuitar), 0.0001)
}

func TestBestBonusDefaultsWithoutGear(t *testing.T) {
	svc, state := newTestService()

	assert.Equal(t, domain.DefaultEquipBonus, svc.BestBonusForSkill(state, domain.SkillPiano))
	assert.Equal(t, domain.DefaultEquipBonus, svc.BestBonusForSkill(state, domain.SkillSongwriting))
}

func TestDegradeAfterUseWearsBestItemOnly(t *testing.T) {
	svc, state := newTestService()

	basic := ownedEquipment(domain.EquipBass, domain.TierBasic, 180, 100)
	legendary := ownedEquipment(domain.EquipBass, domain.TierLegendary, 3500, 90)
	state.AddEquipment(basic)
	state.AddEquipment(legendary)

	svc.DegradeAfterUse(state, domain.SkillBass, 1)

	assert.Equal(t, 100, state.Equipment(basic.ID).Durability)
	assert.Equal(t, 89, state.Equipment(legendary.ID).Durability)
}

func TestDegradeAfterUseNoMatchingGear(t *testing.T) {
	svc, state := newTestService()

	// No gear at all; must not panic.
	svc.DegradeAfterUse(state, domain.SkillDrums, 1)
	assert.Empty(t, state.Inventory)
}

func TestOwnsUsable(t *testing.T) {
	svc, state := newTestService()

	assert.False(t, svc.OwnsUsable(state, domain.EquipMicrophone))

	broken := ownedEquipment(domain.EquipMicrophone, domain.TierBasic, 80, 5)
	state.AddEquipment(broken)
	assert.False(t, svc.OwnsUsable(state, domain.EquipMicrophone))

	working := ownedEquipment(domain.EquipMicrophone, domain.TierProfessional, 400, 70)
	state.AddEquipment(working)
	assert.True(t, svc.OwnsUsable(state, domain.EquipMicrophone))
}
