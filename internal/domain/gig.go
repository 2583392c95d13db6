package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GigStatus tracks a gig through its lifecycle:
// booked -> (scheduled time passes) -> completed, or cancelled.
type GigStatus string

const (
	GigBooked     GigStatus = "booked"
	GigInProgress GigStatus = "in_progress"
	GigCompleted  GigStatus = "completed"
	GigCancelled  GigStatus = "cancelled"
)

// GigResults holds the outcome of an executed gig. Absent until execution.
type GigResults struct {
	Attendance         int             `json:"attendance"`
	PerformanceQuality int             `json:"performance_quality"`
	GrossRevenue       decimal.Decimal `json:"gross_revenue"`
	NetPayout          decimal.Decimal `json:"net_payout"`
	FansGained         int             `json:"fans_gained"`
	FameGained         int             `json:"fame_gained"`
}

// Gig is one booked performance at a venue.
type Gig struct {
	ID          uuid.UUID       `json:"id"`
	VenueID     uuid.UUID       `json:"venue_id"`
	PlayerID    uuid.UUID       `json:"player_id"`
	SetlistID   uuid.UUID       `json:"setlist_id"`
	ScheduledAt time.Time       `json:"scheduled_at"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	BookingCost decimal.Decimal `json:"booking_cost"`
	Status      GigStatus       `json:"status"`
	Results     *GigResults     `json:"results,omitempty"`
}

// IsDue reports whether a booked gig's scheduled time has arrived.
func (g *Gig) IsDue(now time.Time) bool {
	return g.Status == GigBooked && !g.ScheduledAt.After(now)
}
