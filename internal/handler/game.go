package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// GameHandler serves the game lifecycle endpoints: starting a new career,
// loading a saved one, reading state and advancing the simulation.
type GameHandler struct {
	engine *engine.Engine
}

func NewGameHandler(eng *engine.Engine) *GameHandler {
	return &GameHandler{engine: eng}
}

// NewGameRequest is the request body for starting a new career
type NewGameRequest struct {
	Name     string    `json:"name" validate:"required,max=64,excludesall=<>"`
	AvatarID string    `json:"avatar_id" validate:"max=64"`
	CityID   uuid.UUID `json:"city_id" validate:"required"`
}

// HandleNewGame creates a fresh player in the chosen starting city
func (h *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "New game"); err != nil {
		return
	}

	state, err := h.engine.NewGame(r.Context(), req.Name, req.AvatarID, req.CityID, time.Now().UTC())
	if err != nil {
		respondServiceError(w, r, "New game", err)
		return
	}

	logger.FromContext(r.Context()).Info("New game started",
		"player_id", state.Player.ID,
		"name", req.Name,
		"city_id", req.CityID)

	respondJSON(w, http.StatusCreated, DataResponse{Data: state})
}

// LoadGameRequest is the request body for loading a saved career
type LoadGameRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// HandleLoadGame loads a saved career from the store
func (h *GameHandler) HandleLoadGame(w http.ResponseWriter, r *http.Request) {
	var req LoadGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Load game"); err != nil {
		return
	}

	if err := h.engine.Load(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Load game", err)
		return
	}

	state, err := h.engine.State()
	if err != nil {
		respondServiceError(w, r, "Load game", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: state})
}

// HandleGetState returns a snapshot of the loaded game state
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.engine.State()
	if err != nil {
		respondServiceError(w, r, "Get state", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: state})
}

// TickResponse reports what a manual tick settled
type TickResponse struct {
	SlotsProcessed  int             `json:"slots_processed"`
	PaymentsSettled int             `json:"payments_settled"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	GigsExecuted    int             `json:"gigs_executed"`
}

// HandleTick settles elapsed activity time, due payments and due gigs
func (h *GameHandler) HandleTick(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Tick(r.Context())
	if err != nil {
		respondServiceError(w, r, "Tick", err)
		return
	}

	respondJSON(w, http.StatusOK, TickResponse{
		SlotsProcessed:  result.SlotsProcessed,
		PaymentsSettled: result.PaymentsSettled,
		TotalPaid:       result.TotalPaid,
		GigsExecuted:    result.GigsExecuted,
	})
}

// SummaryResponse aggregates the advisory read models shown on the
// player's dashboard.
type SummaryResponse struct {
	RecommendedAction  string          `json:"recommended_action"`
	RentWarning        string          `json:"rent_warning,omitempty"`
	NextPaymentDate    *time.Time      `json:"next_payment_date,omitempty"`
	CurrentJobEarnings decimal.Decimal `json:"current_job_earnings"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`
}

// HandleGetSummary returns the dashboard summary for the loaded player
func (h *GameHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	action, err := h.engine.RecommendedAction()
	if err != nil {
		respondServiceError(w, r, "Get summary", err)
		return
	}

	warning, err := h.engine.RentWarning()
	if err != nil {
		respondServiceError(w, r, "Get summary", err)
		return
	}

	nextPayment, err := h.engine.NextPaymentDate()
	if err != nil {
		respondServiceError(w, r, "Get summary", err)
		return
	}

	earnings, err := h.engine.CurrentJobEarnings()
	if err != nil {
		respondServiceError(w, r, "Get summary", err)
		return
	}

	inventory, err := h.engine.TotalInventoryValue()
	if err != nil {
		respondServiceError(w, r, "Get summary", err)
		return
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		RecommendedAction:  action,
		RentWarning:        warning,
		NextPaymentDate:    nextPayment,
		CurrentJobEarnings: earnings,
		InventoryValue:     inventory,
	})
}
