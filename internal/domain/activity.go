package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityKind tags the Activity union.
type ActivityKind string

const (
	ActivityPractice  ActivityKind = "practice"
	ActivityRest      ActivityKind = "rest"
	ActivityJob       ActivityKind = "job"
	ActivityRehearsal ActivityKind = "rehearsal"
	ActivityGig       ActivityKind = "gig"
)

// JobType enumerates the day jobs a player can work.
type JobType string

const (
	JobCashier    JobType = "cashier"
	JobSalesClerk JobType = "sales_clerk"
	JobBarista    JobType = "barista"
	JobWaiter     JobType = "waiter"
)

// jobSalaries maps each job type to its weekly salary.
var jobSalaries = map[JobType]int64{
	JobCashier:    150,
	JobSalesClerk: 150,
	JobBarista:    175,
	JobWaiter:     200,
}

// WeeklySalary returns the job's weekly pay.
func (j JobType) WeeklySalary() decimal.Decimal {
	return decimal.NewFromInt(jobSalaries[j])
}

// Valid reports whether j is a known job type.
func (j JobType) Valid() bool {
	_, ok := jobSalaries[j]
	return ok
}

// Activity is the tagged union of things a slot can run. Exactly the fields
// implied by Kind are set; all mapping from activity to skill or equipment
// goes through explicit tables, never display text.
type Activity struct {
	Kind       ActivityKind `json:"kind"`
	Instrument SkillType    `json:"instrument,omitempty"` // practice
	Job        JobType      `json:"job,omitempty"`        // job
	SetlistID  uuid.UUID    `json:"setlist_id,omitempty"` // rehearsal
	GigID      uuid.UUID    `json:"gig_id,omitempty"`     // gig
}

// Validate checks that the tagged fields match the kind.
func (a Activity) Validate() error {
	switch a.Kind {
	case ActivityPractice:
		if !a.Instrument.Valid() {
			return fmt.Errorf("%w: unknown instrument %q", ErrValidationFailed, a.Instrument)
		}
	case ActivityJob:
		if !a.Job.Valid() {
			return fmt.Errorf("%w: unknown job type %q", ErrValidationFailed, a.Job)
		}
	case ActivityRehearsal:
		if a.SetlistID == uuid.Nil {
			return fmt.Errorf("%w: rehearsal requires a setlist", ErrValidationFailed)
		}
	case ActivityGig:
		if a.GigID == uuid.Nil {
			return fmt.Errorf("%w: gig activity requires a gig", ErrValidationFailed)
		}
	case ActivityRest:
	default:
		return fmt.Errorf("%w: unknown activity kind %q", ErrValidationFailed, a.Kind)
	}
	return nil
}

// SlotType identifies one of the two activity slots.
type SlotType string

const (
	SlotPrimaryFocus SlotType = "primary_focus"
	SlotFreeTime     SlotType = "free_time"
)

// TimeSlot holds at most one running activity. StartedAt is set iff an
// activity is present and marks the start of the whole session; SettledAt is
// the cursor of the last settled instant, so session-length effects like
// fatigue stay independent of how often ticks run.
type TimeSlot struct {
	ID              uuid.UUID  `json:"id"`
	PlayerID        uuid.UUID  `json:"player_id"`
	SlotType        SlotType   `json:"slot_type"`
	CurrentActivity *Activity  `json:"current_activity,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	SettledAt       *time.Time `json:"settled_at,omitempty"`
}

// NewTimeSlot creates an empty slot.
func NewTimeSlot(playerID uuid.UUID, t SlotType) TimeSlot {
	return TimeSlot{
		ID:       uuid.New(),
		PlayerID: playerID,
		SlotType: t,
	}
}

// IsActive reports whether the slot has a running activity.
func (s *TimeSlot) IsActive() bool {
	return s.CurrentActivity != nil && s.StartedAt != nil
}

// Elapsed returns how long the current session has been running at now.
func (s *TimeSlot) Elapsed(now time.Time) time.Duration {
	if s.StartedAt == nil {
		return 0
	}
	return now.Sub(*s.StartedAt)
}

// Unsettled returns the portion of the session not yet settled by a tick.
func (s *TimeSlot) Unsettled(now time.Time) time.Duration {
	cursor := s.StartedAt
	if s.SettledAt != nil {
		cursor = s.SettledAt
	}
	if cursor == nil {
		return 0
	}
	return now.Sub(*cursor)
}

// MarkSettled advances the settle cursor without ending the session.
func (s *TimeSlot) MarkSettled(now time.Time) {
	settled := now
	s.SettledAt = &settled
}

// Assign starts an activity in this slot, replacing any previous one.
func (s *TimeSlot) Assign(a Activity, now time.Time) {
	act := a
	started := now
	s.CurrentActivity = &act
	s.StartedAt = &started
	s.SettledAt = nil
}

// Clear stops the slot. Elapsed-but-unprocessed time is discarded; the tick
// orchestrator decides whether to settle first.
func (s *TimeSlot) Clear() {
	s.CurrentActivity = nil
	s.StartedAt = nil
	s.SettledAt = nil
}
