package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
)

// ActivityHandler assigns and clears the two time slots.
type ActivityHandler struct {
	engine *engine.Engine
}

func NewActivityHandler(eng *engine.Engine) *ActivityHandler {
	return &ActivityHandler{engine: eng}
}

// SetActivityRequest is the request body for assigning a slot
type SetActivityRequest struct {
	Slot       string    `json:"slot" validate:"required,slottype"`
	Kind       string    `json:"kind" validate:"required"`
	Instrument string    `json:"instrument,omitempty"`
	Job        string    `json:"job,omitempty"`
	SetlistID  uuid.UUID `json:"setlist_id,omitempty"`
	GigID      uuid.UUID `json:"gig_id,omitempty"`
}

// HandleSetActivity assigns an activity to a slot, settling whatever was
// running there first when the engine is configured to do so
func (h *ActivityHandler) HandleSetActivity(w http.ResponseWriter, r *http.Request) {
	var req SetActivityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set activity"); err != nil {
		return
	}

	activity := domain.Activity{
		Kind:       domain.ActivityKind(req.Kind),
		Instrument: domain.SkillType(req.Instrument),
		Job:        domain.JobType(req.Job),
		SetlistID:  req.SetlistID,
		GigID:      req.GigID,
	}

	if err := h.engine.SetActivity(r.Context(), domain.SlotType(req.Slot), activity); err != nil {
		respondServiceError(w, r, "Set activity", err)
		return
	}

	state, err := h.engine.State()
	if err != nil {
		respondServiceError(w, r, "Set activity", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: state.Slot(domain.SlotType(req.Slot))})
}

// ClearActivityRequest is the request body for clearing a slot
type ClearActivityRequest struct {
	Slot string `json:"slot" validate:"required,slottype"`
}

// HandleClearActivity empties a slot
func (h *ActivityHandler) HandleClearActivity(w http.ResponseWriter, r *http.Request) {
	var req ClearActivityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Clear activity"); err != nil {
		return
	}

	if err := h.engine.ClearActivity(r.Context(), domain.SlotType(req.Slot)); err != nil {
		respondServiceError(w, r, "Clear activity", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgActivityCleared})
}
