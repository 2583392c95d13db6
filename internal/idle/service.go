// Package idle advances the simulation through discrete ticks: elapsed time
// in the two activity slots becomes skill XP, rest recovery or work fatigue,
// then due paychecks and due gigs are settled in the same pass.
package idle

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/gear"
	"github.com/cadencehq/cadence-server/internal/gig"
	"github.com/cadencehq/cadence-server/internal/healthmood"
	"github.com/cadencehq/cadence-server/internal/housing"
	"github.com/cadencehq/cadence-server/internal/jobpay"
	"github.com/cadencehq/cadence-server/internal/logger"
)

const (
	baseXPPerSecond = 10.0 / 3600.0

	practiceFatigueThresholdHours = 4.0
	practiceFatigueHealthPerHour  = 1.0
)

// TickResult summarizes everything one tick settled.
type TickResult struct {
	SlotsProcessed  int
	PaymentsSettled int
	TotalPaid       decimal.Decimal
	GigsExecuted    int
}

// Service runs the idle progression pass and manages the two activity slots.
// All methods mutate the passed state in place; the caller owns locking and
// persistence.
type Service interface {
	Tick(ctx context.Context, state *domain.GameState) (TickResult, error)
	SetActivity(ctx context.Context, state *domain.GameState, slot domain.SlotType, activity domain.Activity) error
	ClearActivity(ctx context.Context, state *domain.GameState, slot domain.SlotType) error
}

type service struct {
	payments      jobpay.Service
	gigs          gig.Service
	gear          gear.Service
	housing       housing.Service
	settleOnClear bool
	now           func() time.Time
}

// NewService creates the tick orchestrator. When settleOnClear is true,
// clearing or replacing an activity settles its accrued time first instead
// of discarding it.
func NewService(payments jobpay.Service, gigs gig.Service, gearSvc gear.Service, housingSvc housing.Service, settleOnClear bool) Service {
	return &service{
		payments:      payments,
		gigs:          gigs,
		gear:          gearSvc,
		housing:       housingSvc,
		settleOnClear: settleOnClear,
		now:           time.Now,
	}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(payments jobpay.Service, gigs gig.Service, gearSvc gear.Service, housingSvc housing.Service, settleOnClear bool, now func() time.Time) Service {
	return &service{
		payments:      payments,
		gigs:          gigs,
		gear:          gearSvc,
		housing:       housingSvc,
		settleOnClear: settleOnClear,
		now:           now,
	}
}

// Tick settles the elapsed time of both slots, pays due paychecks, executes
// due gigs and stamps the sync time. A slot whose referenced skill no longer
// exists is skipped; the rest of the tick still runs.
func (s *service) Tick(ctx context.Context, state *domain.GameState) (TickResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	result := TickResult{TotalPaid: decimal.Zero}

	for _, slotType := range []domain.SlotType{domain.SlotPrimaryFocus, domain.SlotFreeTime} {
		slot := state.Slot(slotType)
		if !slot.IsActive() {
			continue
		}
		s.settleSlot(ctx, state, slot, now)
		result.SlotsProcessed++
	}

	settled, err := s.payments.SettleDuePayments(ctx, state)
	if err != nil {
		return result, fmt.Errorf("settle payments: %w", err)
	}
	result.PaymentsSettled = settled.PaymentsSettled
	result.TotalPaid = settled.TotalPaid

	executed, err := s.gigs.ExecuteDue(ctx, state)
	if err != nil {
		return result, fmt.Errorf("execute gigs: %w", err)
	}
	result.GigsExecuted = executed

	state.Player.LastSyncAt = now

	log.Debug("Tick complete",
		"slots", result.SlotsProcessed,
		"payments", result.PaymentsSettled,
		"gigs", result.GigsExecuted)
	return result, nil
}

// SetActivity starts an activity in the given slot, replacing any current
// one. An already running activity in that slot is settled first when the
// service was built with settleOnClear.
func (s *service) SetActivity(ctx context.Context, state *domain.GameState, slotType domain.SlotType, activity domain.Activity) error {
	if err := activity.Validate(); err != nil {
		return err
	}

	now := s.now()
	slot := state.Slot(slotType)
	if s.settleOnClear && slot.IsActive() {
		s.settleSlot(ctx, state, slot, now)
	}
	slot.Assign(activity, now)

	logger.FromContext(ctx).Info("Activity set", "slot", slotType, "kind", activity.Kind)
	return nil
}

// ClearActivity stops whatever the slot is running. Accrued unsettled time
// is discarded unless the service was built with settleOnClear.
func (s *service) ClearActivity(ctx context.Context, state *domain.GameState, slotType domain.SlotType) error {
	now := s.now()
	slot := state.Slot(slotType)
	if s.settleOnClear && slot.IsActive() {
		s.settleSlot(ctx, state, slot, now)
	}
	slot.Clear()

	logger.FromContext(ctx).Info("Activity cleared", "slot", slotType)
	return nil
}

// settleSlot converts the unsettled window into its effects and advances the
// settle cursor. Fatigue and overwork are charged against cumulative session
// hours, so splitting a session across many ticks costs the same as settling
// it in one.
func (s *service) settleSlot(ctx context.Context, state *domain.GameState, slot *domain.TimeSlot, now time.Time) {
	window := slot.Unsettled(now)
	if window <= 0 {
		return
	}
	sessionHours := slot.Elapsed(now).Hours()
	settledHours := sessionHours - window.Hours()

	switch slot.CurrentActivity.Kind {
	case domain.ActivityPractice:
		s.settlePractice(ctx, state, slot.CurrentActivity.Instrument, window, settledHours, sessionHours)
	case domain.ActivityRest:
		s.settleRest(state, window)
	case domain.ActivityJob:
		settleJobShift(state, settledHours, sessionHours)
	}
	slot.MarkSettled(now)
}

func (s *service) settlePractice(ctx context.Context, state *domain.GameState, instrument domain.SkillType, window time.Duration, settledHours, sessionHours float64) {
	skill := state.Skill(instrument)
	if skill == nil {
		logger.FromContext(ctx).Warn("Practice slot references missing skill", "instrument", instrument)
		return
	}

	bonus := s.gear.BestBonusForSkill(state, instrument)
	xp := practiceXP(window, state.Player.Mood, bonus, state.Player.Health)
	skill.AddXP(xp)

	s.gear.DegradeAfterUse(state, instrument, domain.PracticeDegradation)

	loss := practiceFatigueLoss(sessionHours) - practiceFatigueLoss(settledHours)
	moodLoss := practiceFatigueLoss(sessionHours)/2 - practiceFatigueLoss(settledHours)/2
	state.Player.AdjustHealth(-loss)
	state.Player.AdjustMood(-moodLoss)
}

// practiceFatigueLoss is the cumulative health cost of a practice session
// that runs past the fatigue threshold.
func practiceFatigueLoss(sessionHours float64) int {
	if sessionHours <= practiceFatigueThresholdHours {
		return 0
	}
	return int((sessionHours - practiceFatigueThresholdHours) * practiceFatigueHealthPerHour)
}

func (s *service) settleRest(state *domain.GameState, elapsed time.Duration) {
	hours := elapsed.Hours()
	mult := s.housing.RestQualityMultiplier(state)

	healthGain := int(float64(healthmood.RestHealthRecovery(hours, state.Player.Health)) * mult)
	moodGain := int(float64(healthmood.RestMoodRecovery(hours, state.Player.Mood)) * mult)

	state.Player.AdjustHealth(healthGain)
	state.Player.AdjustMood(moodGain)
}

func settleJobShift(state *domain.GameState, settledHours, sessionHours float64) {
	state.Player.AdjustHealth(-(healthmood.OverworkHealthLoss(sessionHours) - healthmood.OverworkHealthLoss(settledHours)))
	state.Player.AdjustMood(-(healthmood.OverworkMoodLoss(sessionHours) - healthmood.OverworkMoodLoss(settledHours)))
}

// practiceXP converts practice time into skill XP, scaled by mood, the best
// matching equipment and the combined health/mood multiplier, truncated.
func practiceXP(elapsed time.Duration, mood int, equipmentBonus float64, health int) int {
	moodModifier := 0.7 + float64(mood)/100.0*0.5
	total := baseXPPerSecond * elapsed.Seconds() * moodModifier * equipmentBonus * healthmood.XPMultiplier(health, mood)
	return int(total)
}
