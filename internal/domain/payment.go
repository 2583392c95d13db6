package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks a job payment's lifecycle.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// JobPayment is one scheduled weekly paycheck. It becomes payable only when
// the scheduled date has passed while still pending, and is paid exactly once.
type JobPayment struct {
	ID            uuid.UUID       `json:"id"`
	PlayerID      uuid.UUID       `json:"player_id"`
	JobType       JobType         `json:"job_type"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	Status        PaymentStatus   `json:"status"`
}

// IsPending reports whether the payment is still scheduled.
func (p *JobPayment) IsPending() bool {
	return p.Status == PaymentPending
}

// IsDue reports whether the payment should be settled at now.
func (p *JobPayment) IsDue(now time.Time) bool {
	return p.IsPending() && !p.ScheduledDate.After(now)
}

// FirstJobPayment schedules the first paycheck one week after the job starts.
func FirstJobPayment(playerID uuid.UUID, job JobType, startDate time.Time) JobPayment {
	return JobPayment{
		ID:            uuid.New(),
		PlayerID:      playerID,
		JobType:       job,
		Amount:        job.WeeklySalary(),
		ScheduledDate: startDate.AddDate(0, 0, DaysPerRentPeriod),
		Status:        PaymentPending,
	}
}

// NextWeeklyPayment schedules the following paycheck one week after the
// previous one's scheduled date, so the pay cycle never drifts.
func NextWeeklyPayment(playerID uuid.UUID, job JobType, lastScheduled time.Time) JobPayment {
	return JobPayment{
		ID:            uuid.New(),
		PlayerID:      playerID,
		JobType:       job,
		Amount:        job.WeeklySalary(),
		ScheduledDate: lastScheduled.AddDate(0, 0, DaysPerRentPeriod),
		Status:        PaymentPending,
	}
}
