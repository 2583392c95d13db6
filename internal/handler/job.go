package handler

import (
	"net/http"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
)

// JobHandler serves day-job employment and payroll endpoints.
type JobHandler struct {
	engine *engine.Engine
}

func NewJobHandler(eng *engine.Engine) *JobHandler {
	return &JobHandler{engine: eng}
}

// StartJobRequest is the request body for taking a day job
type StartJobRequest struct {
	Job string `json:"job" validate:"required,jobtype"`
}

// HandleStartJob employs the player and schedules the first weekly payment
func (h *JobHandler) HandleStartJob(w http.ResponseWriter, r *http.Request) {
	var req StartJobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start job"); err != nil {
		return
	}

	payment, err := h.engine.StartJob(r.Context(), domain.JobType(req.Job))
	if err != nil {
		respondServiceError(w, r, "Start job", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: payment})
}

// HandleQuitJob ends the current employment, forfeiting pending payments
func (h *JobHandler) HandleQuitJob(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.QuitJob(r.Context()); err != nil {
		respondServiceError(w, r, "Quit job", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgJobQuit})
}

// HandleGetPayments returns pending and paid payments for the loaded player
func (h *JobHandler) HandleGetPayments(w http.ResponseWriter, r *http.Request) {
	pending, err := h.engine.PendingPayments()
	if err != nil {
		respondServiceError(w, r, "Get payments", err)
		return
	}

	paid, err := h.engine.PaidPayments()
	if err != nil {
		respondServiceError(w, r, "Get payments", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"pending": pending,
		"paid":    paid,
	})
}
