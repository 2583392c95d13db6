package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/engine"
)

// GigHandler serves live-show booking and cancellation.
type GigHandler struct {
	engine *engine.Engine
}

func NewGigHandler(eng *engine.Engine) *GigHandler {
	return &GigHandler{engine: eng}
}

// BookGigRequest is the request body for booking a show
type BookGigRequest struct {
	VenueID     uuid.UUID       `json:"venue_id" validate:"required"`
	SetlistID   uuid.UUID       `json:"setlist_id" validate:"required"`
	ScheduledAt time.Time       `json:"scheduled_at" validate:"required"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
}

// HandleBook books a future show at a venue, paying the booking cost up front
func (h *GigHandler) HandleBook(w http.ResponseWriter, r *http.Request) {
	var req BookGigRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Book gig"); err != nil {
		return
	}

	gig, err := h.engine.BookGig(r.Context(), req.VenueID, req.SetlistID, req.ScheduledAt, req.TicketPrice)
	if err != nil {
		respondServiceError(w, r, "Book gig", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: gig})
}

// CancelGigRequest identifies a booked gig
type CancelGigRequest struct {
	GigID uuid.UUID `json:"gig_id" validate:"required"`
}

// HandleCancel cancels a booked gig and refunds the booking cost
func (h *GigHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	var req CancelGigRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel gig"); err != nil {
		return
	}

	if err := h.engine.CancelGig(r.Context(), req.GigID); err != nil {
		respondServiceError(w, r, "Cancel gig", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGigCancelled})
}

// HandleGetUpcoming lists booked gigs still in the future
func (h *GigHandler) HandleGetUpcoming(w http.ResponseWriter, r *http.Request) {
	gigs, err := h.engine.UpcomingGigs()
	if err != nil {
		respondServiceError(w, r, "Get upcoming gigs", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: gigs})
}

// HandleGetCompleted lists executed gigs with their results
func (h *GigHandler) HandleGetCompleted(w http.ResponseWriter, r *http.Request) {
	gigs, err := h.engine.CompletedGigs()
	if err != nil {
		respondServiceError(w, r, "Get completed gigs", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: gigs})
}
