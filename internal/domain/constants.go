package domain

import "github.com/shopspring/decimal"

// Attribute bounds shared by health, mood and reputation.
const (
	AttributeMin = 0
	AttributeMax = 100
)

// New-game starting values.
const (
	StartingHealth     = 80
	StartingMood       = 70
	StartingFame       = 0
	StartingReputation = 50
)

// StartingBalance is the wallet balance a new player begins with.
var StartingBalance = decimal.NewFromInt(500)

// Skill progression tuning.
const (
	// MaxSkillLevel caps every skill's level.
	MaxSkillLevel = 100

	// XPCurveBase scales the level curve: xpRequired(L) = 100 * L^1.5.
	XPCurveBase = 100.0
)

// Equipment durability thresholds.
const (
	DurabilityMax       = 100
	UsableDurability    = 10 // usable iff durability > this
	RepairThreshold     = 50 // needsRepair iff durability < this
	RepairCostFraction  = 0.3
	SellPriceFraction   = 0.5
	DefaultEquipBonus   = 1.0
	PracticeDegradation = 1
)

// Rent timing.
const (
	DaysPerRentPeriod  = 7
	RentDueSoonDays    = 2
	EvictionRiskDays   = 7
	HoursPerDay        = 24
	SecondsPerHour     = 3600
)

// Setlist readiness thresholds.
const (
	SetlistMinSongs     = 3
	SetlistReadyQuality = 30
)
