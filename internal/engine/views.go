package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/healthmood"
)

// Read accessors. All are pure derivations from the canonical state taken
// under the engine mutex; none has side effects.

// Player returns a copy of the player.
func (e *Engine) Player() (domain.Player, error) {
	var p domain.Player
	err := e.read(func(s *domain.GameState) { p = s.Player })
	return p, err
}

// UnreleasedSongs returns songs not yet part of a release.
func (e *Engine) UnreleasedSongs() ([]domain.Song, error) {
	var out []domain.Song
	err := e.read(func(s *domain.GameState) { out = s.UnreleasedSongs() })
	return out, err
}

// UnreleasedRecordings returns recordings available for a release.
func (e *Engine) UnreleasedRecordings() ([]domain.Recording, error) {
	var out []domain.Recording
	err := e.read(func(s *domain.GameState) { out = s.UnreleasedRecordings() })
	return out, err
}

// PendingPayments returns scheduled paychecks not yet settled.
func (e *Engine) PendingPayments() ([]domain.JobPayment, error) {
	var out []domain.JobPayment
	err := e.read(func(s *domain.GameState) { out = s.PendingPayments() })
	return out, err
}

// PaidPayments returns settled paychecks.
func (e *Engine) PaidPayments() ([]domain.JobPayment, error) {
	var out []domain.JobPayment
	err := e.read(func(s *domain.GameState) { out = s.PaidPayments() })
	return out, err
}

// NextPaymentDate returns when the next paycheck lands, nil if unemployed.
func (e *Engine) NextPaymentDate() (*time.Time, error) {
	var out *time.Time
	err := e.read(func(s *domain.GameState) { out = e.payments.NextPaymentDate(s) })
	return out, err
}

// CurrentJobEarnings sums paychecks received since the current job started.
func (e *Engine) CurrentJobEarnings() (decimal.Decimal, error) {
	out := decimal.Zero
	err := e.read(func(s *domain.GameState) { out = e.payments.CurrentJobEarnings(s) })
	return out, err
}

// UpcomingGigs returns booked future gigs, soonest first.
func (e *Engine) UpcomingGigs() ([]domain.Gig, error) {
	var out []domain.Gig
	err := e.read(func(s *domain.GameState) { out = s.UpcomingGigs(e.now()) })
	return out, err
}

// CompletedGigs returns finished gigs, most recent first.
func (e *Engine) CompletedGigs() ([]domain.Gig, error) {
	var out []domain.Gig
	err := e.read(func(s *domain.GameState) { out = s.CompletedGigs() })
	return out, err
}

// EquipmentNeedingRepair returns owned gear below the repair threshold.
func (e *Engine) EquipmentNeedingRepair() ([]domain.Equipment, error) {
	var out []domain.Equipment
	err := e.read(func(s *domain.GameState) { out = s.EquipmentNeedingRepair() })
	return out, err
}

// TotalInventoryValue sums base prices scaled by condition.
func (e *Engine) TotalInventoryValue() (decimal.Decimal, error) {
	out := decimal.Zero
	err := e.read(func(s *domain.GameState) { out = s.TotalInventoryValue() })
	return out, err
}

// BestEquipmentBonus returns the practice bonus gear grants for a skill.
func (e *Engine) BestEquipmentBonus(skill domain.SkillType) (float64, error) {
	out := 1.0
	err := e.read(func(s *domain.GameState) { out = e.gear.BestBonusForSkill(s, skill) })
	return out, err
}

// RentWarning returns a human-readable rent status, empty when nothing is
// due soon.
func (e *Engine) RentWarning() (string, error) {
	var out string
	err := e.read(func(s *domain.GameState) { out = e.housing.RentWarning(s) })
	return out, err
}

// RecommendedAction summarizes the player's condition into one suggestion.
func (e *Engine) RecommendedAction() (string, error) {
	var out string
	err := e.read(func(s *domain.GameState) {
		out = healthmood.RecommendedAction(s.Player.Health, s.Player.Mood)
	})
	return out, err
}
