package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHousing_WeeklyRent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := NewHousing(uuid.New(), HousingOneBedroom, uuid.New(), now)

	rent := h.WeeklyRent(decimal.NewFromFloat(1.5))

	assert.True(t, rent.Equal(decimal.NewFromInt(600)), "got %s", rent)
}

func TestHousing_ExtendRent_NoStacking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := NewHousing(uuid.New(), HousingStudio, uuid.New(), now)
	originalPaidUntil := h.RentPaidUntil

	// Two early payments of one week each must extend from the existing
	// paid-until date, not from "now".
	h.ExtendRent(1, now.Add(time.Hour))
	h.ExtendRent(1, now.Add(2*time.Hour))

	assert.Equal(t, originalPaidUntil.AddDate(0, 0, 14), h.RentPaidUntil)
}

func TestHousing_ExtendRent_Overdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := NewHousing(uuid.New(), HousingStudio, uuid.New(), now)

	late := h.RentPaidUntil.AddDate(0, 0, 3)
	assert.True(t, h.IsRentOverdue(late))

	h.ExtendRent(1, late)

	// Overdue payment starts a fresh period from now
	assert.Equal(t, late.AddDate(0, 0, 7), h.RentPaidUntil)
}

func TestHousing_OverdueTracking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := NewHousing(uuid.New(), HousingStudio, uuid.New(), now)

	assert.False(t, h.IsRentOverdue(now))
	assert.Equal(t, 7, h.DaysUntilRentDue(now))
	assert.Equal(t, 0, h.DaysOverdue(now))

	day9 := h.RentPaidUntil.AddDate(0, 0, 2)
	assert.True(t, h.IsRentOverdue(day9))
	assert.Equal(t, 2, h.DaysOverdue(day9))
	assert.False(t, h.IsAtRiskOfEviction(day9))

	day16 := h.RentPaidUntil.AddDate(0, 0, 7)
	assert.True(t, h.IsAtRiskOfEviction(day16))
}

func TestHousingType_TierOrdering(t *testing.T) {
	assert.Less(t, HousingStudio.TierIndex(), HousingOneBedroom.TierIndex())
	assert.Less(t, HousingOneBedroom.TierIndex(), HousingTwoBedroom.TierIndex())
	assert.Less(t, HousingTwoBedroom.TierIndex(), HousingPenthouse.TierIndex())
}
