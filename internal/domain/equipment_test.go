package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testEquipment(tier EquipmentTier, durability int) Equipment {
	return Equipment{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		EquipmentType: EquipGuitar,
		Tier:          tier,
		Name:          "Test Guitar",
		BasePrice:     decimal.NewFromInt(1200),
		Durability:    durability,
	}
}

func TestEquipment_SellPrice(t *testing.T) {
	e := testEquipment(TierProfessional, 40)

	// 1200 * 0.5 * 0.40 = 240
	assert.True(t, e.SellPrice().Equal(decimal.NewFromInt(240)), "got %s", e.SellPrice())
}

func TestEquipment_RepairCost(t *testing.T) {
	e := testEquipment(TierProfessional, 40)

	// 1200 * (100-40)/100 * 0.3 = 216
	assert.True(t, e.RepairCost().Equal(decimal.NewFromInt(216)), "got %s", e.RepairCost())
}

func TestEquipment_PerformanceBonus(t *testing.T) {
	e := testEquipment(TierLegendary, 50)

	// 1.5 * 0.5
	assert.InDelta(t, 0.75, e.PerformanceBonus(), 1e-9)
}

func TestEquipment_DurabilityBounds(t *testing.T) {
	e := testEquipment(TierBasic, 5)

	e.ReduceDurability(100)
	assert.Equal(t, 0, e.Durability)
	assert.False(t, e.IsUsable())

	e.Repair()
	assert.Equal(t, DurabilityMax, e.Durability)
	assert.True(t, e.IsUsable())
	assert.False(t, e.NeedsRepair())
}

func TestEquipment_UsabilityThresholds(t *testing.T) {
	tests := []struct {
		durability  int
		usable      bool
		needsRepair bool
	}{
		{100, true, false},
		{50, true, false},
		{49, true, true},
		{11, true, true},
		{10, false, true},
		{0, false, true},
	}

	for _, tt := range tests {
		e := testEquipment(TierBasic, tt.durability)
		assert.Equal(t, tt.usable, e.IsUsable(), "durability %d", tt.durability)
		assert.Equal(t, tt.needsRepair, e.NeedsRepair(), "durability %d", tt.durability)
	}
}

func TestEquipmentForSkill_Mapping(t *testing.T) {
	et, ok := EquipmentForSkill(SkillGuitar)
	assert.True(t, ok)
	assert.Equal(t, EquipGuitar, et)

	et, ok = EquipmentForSkill(SkillProduction)
	assert.True(t, ok)
	assert.Equal(t, EquipProductionGear, et)

	// Songwriting has no gear
	_, ok = EquipmentForSkill(SkillSongwriting)
	assert.False(t, ok)
}
