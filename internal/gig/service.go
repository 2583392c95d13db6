// Package gig handles live shows: booking venues and executing performances
// once their scheduled time arrives.
package gig

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/healthmood"
	"github.com/cadencehq/cadence-server/internal/logger"
)

const (
	baseDraw        = 20
	fansPerDrawUnit = 10
	fameScale       = 1000.0
	priceElasticity = 0.3

	setlistWeight     = 0.5
	performanceWeight = 0.3
	healthWeight      = 0.1
	moodWeight        = 0.1

	venueCut = 0.3

	performanceHealthCost = 5
	gigBaseXP             = 10
	gigXPQualityDivisor   = 5
)

// Service defines gig business logic. Methods mutate the passed state in
// place; the caller owns locking and persistence.
type Service interface {
	Book(ctx context.Context, state *domain.GameState, venueID uuid.UUID, setlistID uuid.UUID, scheduledAt time.Time, ticketPrice decimal.Decimal) (domain.Gig, error)
	Execute(ctx context.Context, state *domain.GameState, gigID uuid.UUID) (domain.GigResults, error)
	ExecuteDue(ctx context.Context, state *domain.GameState) (int, error)
	Cancel(ctx context.Context, state *domain.GameState, gigID uuid.UUID) error
}

type service struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewService creates a new gig service backed by the venue catalog.
func NewService(cat *catalog.Catalog) Service {
	return &service{catalog: cat, now: time.Now}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(cat *catalog.Catalog, now func() time.Time) Service {
	return &service{catalog: cat, now: now}
}

// Book reserves a venue for a future show. The venue's fame gate must be
// met and the booking cost is paid up front, refunded only on cancellation.
func (s *service) Book(ctx context.Context, state *domain.GameState, venueID uuid.UUID, setlistID uuid.UUID, scheduledAt time.Time, ticketPrice decimal.Decimal) (domain.Gig, error) {
	log := logger.FromContext(ctx)

	venue, err := s.catalog.Venue(venueID)
	if err != nil {
		return domain.Gig{}, err
	}
	if state.Player.Fame < venue.MinFame {
		return domain.Gig{}, fmt.Errorf("%w: venue %s requires %d fame, have %d",
			domain.ErrInvalidTransition, venue.Name, venue.MinFame, state.Player.Fame)
	}
	if state.Setlist(setlistID) == nil {
		return domain.Gig{}, fmt.Errorf("%w: %s", domain.ErrSetlistNotFound, setlistID)
	}
	if ticketPrice.IsNegative() {
		return domain.Gig{}, fmt.Errorf("%w: ticket price cannot be negative", domain.ErrValidationFailed)
	}
	if !scheduledAt.After(s.now()) {
		return domain.Gig{}, fmt.Errorf("%w: gig must be scheduled in the future", domain.ErrInvalidTransition)
	}

	if err := state.Wallet.DeductExpense(venue.BookingCost); err != nil {
		return domain.Gig{}, fmt.Errorf("book %s: %w", venue.Name, err)
	}

	g := domain.Gig{
		ID:          uuid.New(),
		VenueID:     venueID,
		PlayerID:    state.Player.ID,
		SetlistID:   setlistID,
		ScheduledAt: scheduledAt,
		TicketPrice: ticketPrice,
		BookingCost: venue.BookingCost,
		Status:      domain.GigBooked,
	}
	state.AddGig(g)

	log.Info("Gig booked", "venue", venue.Name, "scheduled_at", scheduledAt, "ticket_price", ticketPrice)
	return g, nil
}

// Execute performs a booked gig: rolls attendance and performance quality,
// pays out the net take, awards fans, fame and performance XP, and applies
// the physical and mood toll of the show.
func (s *service) Execute(ctx context.Context, state *domain.GameState, gigID uuid.UUID) (domain.GigResults, error) {
	log := logger.FromContext(ctx)

	g := state.Gig(gigID)
	if g == nil {
		return domain.GigResults{}, fmt.Errorf("%w: %s", domain.ErrGigNotFound, gigID)
	}
	if g.Status != domain.GigBooked {
		return domain.GigResults{}, fmt.Errorf("%w: gig is %s", domain.ErrInvalidTransition, g.Status)
	}
	venue, err := s.catalog.Venue(g.VenueID)
	if err != nil {
		return domain.GigResults{}, err
	}
	sl := state.Setlist(g.SetlistID)
	if sl == nil {
		return domain.GigResults{}, fmt.Errorf("%w: %s", domain.ErrSetlistNotFound, g.SetlistID)
	}

	attendance := attendance(venue, state.Player.Fame, state.FanBase, g.TicketPrice)
	quality := performanceQuality(sl.Quality, state.SkillLevel(domain.SkillPerformance), state.Player.Health, state.Player.Mood)

	gross := decimal.NewFromInt(int64(attendance)).Mul(g.TicketPrice)
	net := gross.Mul(decimal.NewFromFloat(1 - venueCut))

	fansGained := int(float64(attendance) * float64(quality) / 100.0 * 0.5)
	fameGained := int(float64(quality) * 0.1)

	results := domain.GigResults{
		Attendance:         attendance,
		PerformanceQuality: quality,
		GrossRevenue:       gross,
		NetPayout:          net,
		FansGained:         fansGained,
		FameGained:         fameGained,
	}
	g.Results = &results
	g.Status = domain.GigCompleted

	state.Wallet.AddIncome(net)
	state.Player.AddFame(fameGained)
	state.FanBase += fansGained

	if perf := state.Skill(domain.SkillPerformance); perf != nil {
		perf.AddXP(gigBaseXP + quality/gigXPQualityDivisor)
	}

	state.Player.AdjustHealth(-performanceHealthCost)
	switch {
	case quality >= 70:
		state.Player.AdjustMood(healthmood.SuccessfulGigMoodBoost(attendance, quality))
	case quality >= 50:
		state.Player.AdjustMood(healthmood.SuccessfulGigMoodBoost(attendance, quality) / 2)
	default:
		state.Player.AdjustMood(-healthmood.FailedGigMoodLoss(venue.Capacity/2, attendance))
	}

	log.Info("Gig performed",
		"venue", venue.Name,
		"attendance", attendance,
		"quality", quality,
		"net_payout", net,
		"fans_gained", fansGained)
	return results, nil
}

// ExecuteDue performs every booked gig whose scheduled time has passed,
// oldest first. Returns the number of gigs executed.
func (s *service) ExecuteDue(ctx context.Context, state *domain.GameState) (int, error) {
	now := s.now()

	due := make([]domain.Gig, 0)
	for i := range state.Gigs {
		if state.Gigs[i].IsDue(now) {
			due = append(due, state.Gigs[i])
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ScheduledAt.Before(due[j].ScheduledAt) })

	executed := 0
	for _, g := range due {
		if _, err := s.Execute(ctx, state, g.ID); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

// Cancel calls off a booked gig and refunds the booking cost.
func (s *service) Cancel(ctx context.Context, state *domain.GameState, gigID uuid.UUID) error {
	log := logger.FromContext(ctx)

	g := state.Gig(gigID)
	if g == nil {
		return fmt.Errorf("%w: %s", domain.ErrGigNotFound, gigID)
	}
	if g.Status != domain.GigBooked {
		return fmt.Errorf("%w: gig is %s", domain.ErrInvalidTransition, g.Status)
	}

	g.Status = domain.GigCancelled
	state.Wallet.AddIncome(g.BookingCost)

	log.Info("Gig cancelled", "gig_id", gigID, "refund", g.BookingCost)
	return nil
}

// attendance projects turnout: a base draw grown by the fan base, scaled up
// by fame and down by ticket price relative to the venue's reference price,
// clamped to capacity.
func attendance(venue catalog.Venue, fame, fanBase int, ticketPrice decimal.Decimal) int {
	draw := float64(baseDraw + fanBase/fansPerDrawUnit)
	fameMultiplier := 1.0 + float64(fame)/fameScale

	priceRatio, _ := ticketPrice.Div(venue.VenueType.ReferenceTicketPrice()).Float64()
	priceSensitivity := 1.0 - priceRatio*priceElasticity

	projected := int(draw * fameMultiplier * priceSensitivity)
	if projected < 0 {
		return 0
	}
	if projected > venue.Capacity {
		return venue.Capacity
	}
	return projected
}

// performanceQuality mixes setlist quality, skill and condition, then
// applies the live-show health/mood modifier and clamps to 0-100.
func performanceQuality(setlistQuality, performanceSkill, health, mood int) int {
	base := float64(setlistQuality)*setlistWeight +
		float64(performanceSkill)*performanceWeight +
		float64(health)*healthWeight +
		float64(mood)*moodWeight

	q := int(base * healthmood.PerformanceQualityModifier(health, mood))
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}

