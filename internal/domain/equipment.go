package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EquipmentType enumerates ownable gear categories.
type EquipmentType string

const (
	EquipGuitar         EquipmentType = "guitar"
	EquipPiano          EquipmentType = "piano"
	EquipDrums          EquipmentType = "drums"
	EquipBass           EquipmentType = "bass"
	EquipMicrophone     EquipmentType = "microphone"
	EquipProductionGear EquipmentType = "production_gear"
)

// equipmentSkills maps each equipment type to the skill it boosts.
var equipmentSkills = map[EquipmentType]SkillType{
	EquipGuitar:         SkillGuitar,
	EquipPiano:          SkillPiano,
	EquipDrums:          SkillDrums,
	EquipBass:           SkillBass,
	EquipMicrophone:     SkillPerformance,
	EquipProductionGear: SkillProduction,
}

// skillEquipment is the inverse mapping used when practice degrades gear.
var skillEquipment = map[SkillType]EquipmentType{
	SkillGuitar:      EquipGuitar,
	SkillPiano:       EquipPiano,
	SkillDrums:       EquipDrums,
	SkillBass:        EquipBass,
	SkillPerformance: EquipMicrophone,
	SkillProduction:  EquipProductionGear,
}

// RelatedSkill returns the skill this equipment type boosts.
func (t EquipmentType) RelatedSkill() SkillType {
	return equipmentSkills[t]
}

// EquipmentForSkill returns the equipment type that boosts skill, if any.
func EquipmentForSkill(s SkillType) (EquipmentType, bool) {
	t, ok := skillEquipment[s]
	return t, ok
}

// Valid reports whether t is a known equipment type.
func (t EquipmentType) Valid() bool {
	_, ok := equipmentSkills[t]
	return ok
}

// EquipmentTier grades gear quality.
type EquipmentTier string

const (
	TierBasic        EquipmentTier = "basic"
	TierProfessional EquipmentTier = "professional"
	TierLegendary    EquipmentTier = "legendary"
)

// tierBonuses maps tiers to their performance bonus multipliers.
var tierBonuses = map[EquipmentTier]float64{
	TierBasic:        1.0,
	TierProfessional: 1.25,
	TierLegendary:    1.5,
}

// BonusMultiplier returns the tier's base bonus.
func (t EquipmentTier) BonusMultiplier() float64 {
	return tierBonuses[t]
}

// Equipment is one owned instrument or piece of production gear.
type Equipment struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	EquipmentType EquipmentType   `json:"equipment_type"`
	Tier          EquipmentTier   `json:"tier"`
	Name          string          `json:"name"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Durability    int             `json:"durability"` // 0-100
	PurchasedAt   time.Time       `json:"purchased_at"`
}

// IsUsable reports whether the gear is in working condition.
func (e *Equipment) IsUsable() bool {
	return e.Durability > UsableDurability
}

// NeedsRepair reports whether the gear has degraded enough to warrant repair.
func (e *Equipment) NeedsRepair() bool {
	return e.Durability < RepairThreshold
}

// PerformanceBonus is the tier bonus scaled by current condition.
func (e *Equipment) PerformanceBonus() float64 {
	return e.Tier.BonusMultiplier() * float64(e.Durability) / float64(DurabilityMax)
}

// RepairCost is proportional to the missing durability.
func (e *Equipment) RepairCost() decimal.Decimal {
	missing := decimal.NewFromInt(int64(DurabilityMax - e.Durability))
	return e.BasePrice.
		Mul(missing).
		Div(decimal.NewFromInt(DurabilityMax)).
		Mul(decimal.NewFromFloat(RepairCostFraction))
}

// SellPrice is half the base price scaled by condition.
func (e *Equipment) SellPrice() decimal.Decimal {
	return e.BasePrice.
		Mul(decimal.NewFromFloat(SellPriceFraction)).
		Mul(decimal.NewFromInt(int64(e.Durability))).
		Div(decimal.NewFromInt(DurabilityMax))
}

// ReduceDurability wears the gear down, never below zero.
func (e *Equipment) ReduceDurability(amount int) {
	e.Durability -= amount
	if e.Durability < 0 {
		e.Durability = 0
	}
}

// Repair restores full durability.
func (e *Equipment) Repair() {
	e.Durability = DurabilityMax
}
