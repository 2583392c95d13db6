// Package jobpay manages day-job employment and the weekly paycheck cycle.
package jobpay

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// SettleResult reports what a settlement pass paid out.
type SettleResult struct {
	PaymentsSettled int             `json:"payments_settled"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
}

// Service defines job employment business logic. All methods mutate the
// passed state in place; the caller owns locking and persistence.
type Service interface {
	StartJob(ctx context.Context, state *domain.GameState, job domain.JobType) (domain.JobPayment, error)
	QuitJob(ctx context.Context, state *domain.GameState) error
	SettleDuePayments(ctx context.Context, state *domain.GameState) (SettleResult, error)
	NextPaymentDate(state *domain.GameState) *time.Time
	HoursWorkedSinceStart(state *domain.GameState) float64
	CurrentJobEarnings(state *domain.GameState) decimal.Decimal
}

type service struct {
	now func() time.Time
}

// NewService creates a new job payment service.
func NewService() Service {
	return &service{now: time.Now}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(now func() time.Time) Service {
	return &service{now: now}
}

// StartJob employs the player and schedules the first paycheck a week out.
// Pending paychecks from a previous job are cancelled first.
func (s *service) StartJob(ctx context.Context, state *domain.GameState, job domain.JobType) (domain.JobPayment, error) {
	log := logger.FromContext(ctx)

	if !job.Valid() {
		return domain.JobPayment{}, fmt.Errorf("%w: unknown job %q", domain.ErrValidationFailed, job)
	}
	if state.CurrentJob != nil {
		return domain.JobPayment{}, fmt.Errorf("%w: already employed as %s", domain.ErrInvalidTransition, *state.CurrentJob)
	}

	cancelPendingPayments(state)

	now := s.now()
	state.CurrentJob = &job
	state.JobStartedAt = &now

	payment := domain.FirstJobPayment(state.Player.ID, job, now)
	state.AddJobPayment(payment)

	log.Info("Job started", "job", job, "first_payment", payment.ScheduledDate)
	return payment, nil
}

// QuitJob ends employment and cancels any paychecks still pending.
func (s *service) QuitJob(ctx context.Context, state *domain.GameState) error {
	log := logger.FromContext(ctx)

	if state.CurrentJob == nil {
		return fmt.Errorf("%w: not currently employed", domain.ErrInvalidTransition)
	}

	job := *state.CurrentJob
	cancelled := cancelPendingPayments(state)
	state.CurrentJob = nil
	state.JobStartedAt = nil

	log.Info("Job quit", "job", job, "payments_cancelled", cancelled)
	return nil
}

// SettleDuePayments pays out every pending paycheck whose scheduled date has
// passed. Each settled paycheck schedules the next one a week after its own
// scheduled date, so a long absence settles the whole backlog without
// shifting the pay cycle.
func (s *service) SettleDuePayments(ctx context.Context, state *domain.GameState) (SettleResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	result := SettleResult{TotalPaid: decimal.Zero}
	for {
		settled := false
		for i := range state.JobPayments {
			p := &state.JobPayments[i]
			if !p.IsDue(now) {
				continue
			}

			state.Wallet.AddIncome(p.Amount)
			paidAt := now
			p.Status = domain.PaymentPaid
			p.PaidDate = &paidAt
			result.PaymentsSettled++
			result.TotalPaid = result.TotalPaid.Add(p.Amount)

			if state.CurrentJob != nil && *state.CurrentJob == p.JobType {
				next := domain.NextWeeklyPayment(state.Player.ID, p.JobType, p.ScheduledDate)
				state.AddJobPayment(next)
			}
			settled = true
		}
		if !settled {
			break
		}
	}

	if result.PaymentsSettled > 0 {
		log.Info("Paychecks settled",
			"count", result.PaymentsSettled,
			"total", result.TotalPaid,
			"balance", state.Wallet.Balance)
	}
	return result, nil
}

// NextPaymentDate returns the earliest pending paycheck date, or nil when
// nothing is scheduled.
func (s *service) NextPaymentDate(state *domain.GameState) *time.Time {
	var next *time.Time
	for i := range state.JobPayments {
		p := &state.JobPayments[i]
		if !p.IsPending() {
			continue
		}
		if next == nil || p.ScheduledDate.Before(*next) {
			d := p.ScheduledDate
			next = &d
		}
	}
	return next
}

// HoursWorkedSinceStart returns hours elapsed since the current job began,
// capped at one full week.
func (s *service) HoursWorkedSinceStart(state *domain.GameState) float64 {
	if state.JobStartedAt == nil {
		return 0
	}
	hours := s.now().Sub(*state.JobStartedAt).Hours()
	const weekHours = float64(domain.DaysPerRentPeriod * domain.HoursPerDay)
	if hours > weekHours {
		return weekHours
	}
	if hours < 0 {
		return 0
	}
	return hours
}

// CurrentJobEarnings sums paid paychecks from the player's current job.
func (s *service) CurrentJobEarnings(state *domain.GameState) decimal.Decimal {
	total := decimal.Zero
	if state.CurrentJob == nil {
		return total
	}
	for _, p := range state.JobPayments {
		if p.Status == domain.PaymentPaid && p.JobType == *state.CurrentJob {
			total = total.Add(p.Amount)
		}
	}
	return total
}

func cancelPendingPayments(state *domain.GameState) int {
	cancelled := 0
	for i := range state.JobPayments {
		if state.JobPayments[i].IsPending() {
			state.JobPayments[i].Status = domain.PaymentCancelled
			cancelled++
		}
	}
	return cancelled
}
