// Package housing manages rentals, rent payments, upgrades and the upkeep
// pass that auto-pays or force-downgrades overdue tenants.
package housing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// UpkeepResult reports what a periodic housing pass did.
type UpkeepResult struct {
	RentPaid        decimal.Decimal `json:"rent_paid"`
	AutoPaid        bool            `json:"auto_paid"`
	ForcedDowngrade bool            `json:"forced_downgrade"`
	MoodBonus       int             `json:"mood_bonus"`
}

// Service defines housing business logic. Methods mutate the passed state in
// place; the caller owns locking and persistence.
type Service interface {
	Rent(ctx context.Context, state *domain.GameState, housingType domain.HousingType) (domain.Housing, error)
	Upgrade(ctx context.Context, state *domain.GameState, newType domain.HousingType) (decimal.Decimal, error)
	Downgrade(ctx context.Context, state *domain.GameState, newType domain.HousingType) (decimal.Decimal, error)
	PayRent(ctx context.Context, state *domain.GameState, weeks int) (decimal.Decimal, error)
	ProcessUpkeep(ctx context.Context, state *domain.GameState) (UpkeepResult, error)
	RestQualityMultiplier(state *domain.GameState) float64
	WeeklyRent(state *domain.GameState) (decimal.Decimal, error)
	RentWarning(state *domain.GameState) string
}

type service struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewService creates a new housing service backed by the city catalog.
func NewService(cat *catalog.Catalog) Service {
	return &service{catalog: cat, now: time.Now}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(cat *catalog.Catalog, now func() time.Time) Service {
	return &service{catalog: cat, now: now}
}

// Rent moves the player into a unit in their current city, charging the
// first week up front and granting the tier's reputation bonus.
func (s *service) Rent(ctx context.Context, state *domain.GameState, housingType domain.HousingType) (domain.Housing, error) {
	log := logger.FromContext(ctx)

	if !housingType.Valid() {
		return domain.Housing{}, fmt.Errorf("%w: unknown housing type %q", domain.ErrValidationFailed, housingType)
	}

	city, err := s.catalog.City(state.Player.CurrentCityID)
	if err != nil {
		return domain.Housing{}, err
	}

	firstWeek := housingType.BaseWeeklyRent().Mul(city.HousingCostMultiplier)
	if err := state.Wallet.DeductExpense(firstWeek); err != nil {
		return domain.Housing{}, fmt.Errorf("rent %s: %w", housingType, err)
	}

	if state.Housing != nil {
		state.Player.AdjustReputation(-state.Housing.HousingType.ReputationBonus())
	}

	h := domain.NewHousing(state.Player.ID, housingType, city.ID, s.now())
	state.Housing = &h
	state.Player.AdjustReputation(housingType.ReputationBonus())

	log.Info("Housing rented", "type", housingType, "city", city.Name, "weekly_rent", firstWeek)
	return h, nil
}

// Upgrade moves to a pricier tier mid-period, charging the rent difference
// prorated over the days already paid for.
func (s *service) Upgrade(ctx context.Context, state *domain.GameState, newType domain.HousingType) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	h := state.Housing
	if h == nil {
		return decimal.Zero, domain.ErrNoHousing
	}
	if !newType.Valid() {
		return decimal.Zero, fmt.Errorf("%w: unknown housing type %q", domain.ErrValidationFailed, newType)
	}
	if newType.TierIndex() <= h.HousingType.TierIndex() {
		return decimal.Zero, fmt.Errorf("%w: %s is not an upgrade from %s", domain.ErrInvalidTransition, newType, h.HousingType)
	}

	city, err := s.catalog.City(h.CityID)
	if err != nil {
		return decimal.Zero, err
	}

	cost := proratedDifference(h.HousingType, newType, city.HousingCostMultiplier, h.DaysUntilRentDue(s.now()))
	if err := state.Wallet.DeductExpense(cost); err != nil {
		return decimal.Zero, fmt.Errorf("upgrade to %s: %w", newType, err)
	}

	state.Player.AdjustReputation(-h.HousingType.ReputationBonus())
	h.HousingType = newType
	state.Player.AdjustReputation(newType.ReputationBonus())

	log.Info("Housing upgraded", "type", newType, "prorated_cost", cost)
	return cost, nil
}

// Downgrade moves to a cheaper tier mid-period, crediting the rent
// difference prorated over the days already paid for.
func (s *service) Downgrade(ctx context.Context, state *domain.GameState, newType domain.HousingType) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	h := state.Housing
	if h == nil {
		return decimal.Zero, domain.ErrNoHousing
	}
	if !newType.Valid() {
		return decimal.Zero, fmt.Errorf("%w: unknown housing type %q", domain.ErrValidationFailed, newType)
	}
	if newType.TierIndex() >= h.HousingType.TierIndex() {
		return decimal.Zero, fmt.Errorf("%w: %s is not a downgrade from %s", domain.ErrInvalidTransition, newType, h.HousingType)
	}

	city, err := s.catalog.City(h.CityID)
	if err != nil {
		return decimal.Zero, err
	}

	credit := proratedDifference(newType, h.HousingType, city.HousingCostMultiplier, h.DaysUntilRentDue(s.now()))
	state.Wallet.AddIncome(credit)

	state.Player.AdjustReputation(-h.HousingType.ReputationBonus())
	h.HousingType = newType
	state.Player.AdjustReputation(newType.ReputationBonus())

	log.Info("Housing downgraded", "type", newType, "prorated_credit", credit)
	return credit, nil
}

// PayRent pays one or more weeks in advance. Paying while current extends
// the covered period; paying while overdue restarts it from now.
func (s *service) PayRent(ctx context.Context, state *domain.GameState, weeks int) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	h := state.Housing
	if h == nil {
		return decimal.Zero, domain.ErrNoHousing
	}
	if weeks < 1 {
		return decimal.Zero, fmt.Errorf("%w: weeks must be positive", domain.ErrValidationFailed)
	}

	city, err := s.catalog.City(h.CityID)
	if err != nil {
		return decimal.Zero, err
	}

	total := h.WeeklyRent(city.HousingCostMultiplier).Mul(decimal.NewFromInt(int64(weeks)))
	if err := state.Wallet.DeductExpense(total); err != nil {
		return decimal.Zero, fmt.Errorf("pay rent: %w", err)
	}
	h.ExtendRent(weeks, s.now())

	log.Info("Rent paid", "weeks", weeks, "total", total, "paid_until", h.RentPaidUntil)
	return total, nil
}

// ProcessUpkeep runs one periodic housing pass: applies the passive mood
// bonus, auto-pays overdue rent when affordable, and force-downgrades to a
// studio once the player has been overdue long enough to face eviction.
func (s *service) ProcessUpkeep(ctx context.Context, state *domain.GameState) (UpkeepResult, error) {
	log := logger.FromContext(ctx)
	result := UpkeepResult{RentPaid: decimal.Zero}

	h := state.Housing
	if h == nil {
		return result, nil
	}

	if bonus := h.HousingType.PassiveMoodBonus(); bonus > 0 {
		state.Player.AdjustMood(bonus)
		result.MoodBonus = bonus
	}

	now := s.now()
	if !h.IsRentOverdue(now) {
		return result, nil
	}

	city, err := s.catalog.City(h.CityID)
	if err != nil {
		return result, err
	}

	weekly := h.WeeklyRent(city.HousingCostMultiplier)
	if state.Wallet.CanAfford(weekly) {
		if err := state.Wallet.DeductExpense(weekly); err != nil {
			return result, err
		}
		h.ExtendRent(1, now)
		result.RentPaid = weekly
		result.AutoPaid = true
		log.Info("Rent auto-paid", "amount", weekly, "paid_until", h.RentPaidUntil)
		return result, nil
	}

	if h.IsAtRiskOfEviction(now) && h.HousingType != domain.HousingStudio {
		state.Player.AdjustReputation(-h.HousingType.ReputationBonus())
		h.HousingType = domain.HousingStudio
		h.ExtendRent(1, now)
		result.ForcedDowngrade = true
		log.Warn("Forced downgrade to studio after missed rent", "days_overdue", h.DaysOverdue(now))
	}
	return result, nil
}

// RestQualityMultiplier returns the current housing's rest amplifier, or the
// neutral multiplier for the unhoused.
func (s *service) RestQualityMultiplier(state *domain.GameState) float64 {
	if state.Housing == nil {
		return 1.0
	}
	return state.Housing.HousingType.RestQualityMultiplier()
}

// WeeklyRent returns the current rent after the city multiplier.
func (s *service) WeeklyRent(state *domain.GameState) (decimal.Decimal, error) {
	if state.Housing == nil {
		return decimal.Zero, domain.ErrNoHousing
	}
	city, err := s.catalog.City(state.Housing.CityID)
	if err != nil {
		return decimal.Zero, err
	}
	return state.Housing.WeeklyRent(city.HousingCostMultiplier), nil
}

// RentWarning returns a player-facing warning string, empty when rent is not
// a concern yet.
func (s *service) RentWarning(state *domain.GameState) string {
	h := state.Housing
	if h == nil {
		return ""
	}
	now := s.now()
	switch {
	case h.IsAtRiskOfEviction(now):
		return fmt.Sprintf("Eviction warning: rent is %d days overdue, pay immediately or be downgraded", h.DaysOverdue(now))
	case h.IsRentOverdue(now):
		return fmt.Sprintf("Rent is %d day(s) overdue", h.DaysOverdue(now))
	case h.IsRentDueSoon(now):
		return fmt.Sprintf("Rent due in %d day(s)", h.DaysUntilRentDue(now))
	}
	return ""
}

// proratedDifference is the weekly rent gap between two tiers, scaled by the
// days left in the already-paid period.
func proratedDifference(lower, higher domain.HousingType, cityMultiplier decimal.Decimal, daysLeft int) decimal.Decimal {
	lowRent := lower.BaseWeeklyRent().Mul(cityMultiplier)
	highRent := higher.BaseWeeklyRent().Mul(cityMultiplier)
	return highRent.Sub(lowRent).
		Div(decimal.NewFromInt(domain.DaysPerRentPeriod)).
		Mul(decimal.NewFromInt(int64(daysLeft)))
}
