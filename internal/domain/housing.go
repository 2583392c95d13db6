package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HousingType enumerates rental tiers in strictly increasing order of cost.
type HousingType string

const (
	HousingStudio     HousingType = "studio"
	HousingOneBedroom HousingType = "one_bedroom"
	HousingTwoBedroom HousingType = "two_bedroom"
	HousingPenthouse  HousingType = "penthouse"
)

// HousingTiers lists tiers from cheapest to most expensive; ordering drives
// upgrade/downgrade validation.
var HousingTiers = []HousingType{
	HousingStudio,
	HousingOneBedroom,
	HousingTwoBedroom,
	HousingPenthouse,
}

type housingAttrs struct {
	baseWeeklyRent  int64
	reputationBonus int
	restMultiplier  float64
	passiveMood     int
}

var housingByType = map[HousingType]housingAttrs{
	HousingStudio:     {baseWeeklyRent: 200, reputationBonus: 0, restMultiplier: 1.0, passiveMood: 0},
	HousingOneBedroom: {baseWeeklyRent: 400, reputationBonus: 5, restMultiplier: 1.2, passiveMood: 1},
	HousingTwoBedroom: {baseWeeklyRent: 700, reputationBonus: 10, restMultiplier: 1.4, passiveMood: 2},
	HousingPenthouse:  {baseWeeklyRent: 1500, reputationBonus: 25, restMultiplier: 1.8, passiveMood: 5},
}

// Valid reports whether t is a known housing type.
func (t HousingType) Valid() bool {
	_, ok := housingByType[t]
	return ok
}

// TierIndex returns the tier's position in the cheapest-first ordering.
func (t HousingType) TierIndex() int {
	for i, h := range HousingTiers {
		if h == t {
			return i
		}
	}
	return 0
}

// BaseWeeklyRent is the rent before the city multiplier.
func (t HousingType) BaseWeeklyRent() decimal.Decimal {
	return decimal.NewFromInt(housingByType[t].baseWeeklyRent)
}

// ReputationBonus is granted while living in this tier.
func (t HousingType) ReputationBonus() int {
	return housingByType[t].reputationBonus
}

// RestQualityMultiplier amplifies rest recovery for residents.
func (t HousingType) RestQualityMultiplier() float64 {
	return housingByType[t].restMultiplier
}

// PassiveMoodBonus is the daily mood gain from comfortable housing.
func (t HousingType) PassiveMoodBonus() int {
	return housingByType[t].passiveMood
}

// Housing is the player's current rental.
type Housing struct {
	ID              uuid.UUID   `json:"id"`
	PlayerID        uuid.UUID   `json:"player_id"`
	HousingType     HousingType `json:"housing_type"`
	CityID          uuid.UUID   `json:"city_id"`
	RentedAt        time.Time   `json:"rented_at"`
	LastRentPayment time.Time   `json:"last_rent_payment"`
	RentPaidUntil   time.Time   `json:"rent_paid_until"`
}

// NewHousing creates a rental with the first week already covered.
func NewHousing(playerID uuid.UUID, t HousingType, cityID uuid.UUID, now time.Time) Housing {
	return Housing{
		ID:              uuid.New(),
		PlayerID:        playerID,
		HousingType:     t,
		CityID:          cityID,
		RentedAt:        now,
		LastRentPayment: now,
		RentPaidUntil:   now.AddDate(0, 0, DaysPerRentPeriod),
	}
}

// WeeklyRent applies the city cost multiplier to the tier's base rent.
func (h *Housing) WeeklyRent(cityMultiplier decimal.Decimal) decimal.Decimal {
	return h.HousingType.BaseWeeklyRent().Mul(cityMultiplier)
}

// DaysUntilRentDue at the given instant; zero when overdue.
func (h *Housing) DaysUntilRentDue(now time.Time) int {
	d := int(h.RentPaidUntil.Sub(now).Hours() / HoursPerDay)
	if d < 0 {
		return 0
	}
	return d
}

// IsRentOverdue reports whether the paid-until date has passed.
func (h *Housing) IsRentOverdue(now time.Time) bool {
	return now.After(h.RentPaidUntil)
}

// IsRentDueSoon reports whether rent is due within two days.
func (h *Housing) IsRentDueSoon(now time.Time) bool {
	return h.DaysUntilRentDue(now) <= RentDueSoonDays
}

// DaysOverdue counts full days past the paid-until date.
func (h *Housing) DaysOverdue(now time.Time) int {
	if !h.IsRentOverdue(now) {
		return 0
	}
	return int(now.Sub(h.RentPaidUntil).Hours() / HoursPerDay)
}

// IsAtRiskOfEviction reports whether rent is at least a week overdue.
func (h *Housing) IsAtRiskOfEviction(now time.Time) bool {
	return h.DaysOverdue(now) >= EvictionRiskDays
}

// ExtendRent moves the paid-until date forward by weeks. When overdue, the
// new period starts at now; otherwise it extends the existing one, so paying
// early never loses already-covered days.
func (h *Housing) ExtendRent(weeks int, now time.Time) {
	days := DaysPerRentPeriod * weeks
	if h.IsRentOverdue(now) {
		h.RentPaidUntil = now.AddDate(0, 0, days)
	} else {
		h.RentPaidUntil = h.RentPaidUntil.AddDate(0, 0, days)
	}
	h.LastRentPayment = now
}
