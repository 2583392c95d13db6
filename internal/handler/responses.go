package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshalling failure never
	// produces a half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for domain errors.
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgNotEnoughMoney      = "Not enough money"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgNotAllowedFromState = "That action is not allowed right now"
)

// mapDomainError maps a service error onto an HTTP status code and a
// user-facing message. Every mutating operation fails with one of four
// root errors, so the mapping stays small; the wrapped detail message is
// passed through because it is already written for players.
func mapDomainError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughMoney
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, userMessage(err, ErrMsgResourceNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, userMessage(err, ErrMsgNotAllowedFromState)
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusBadRequest, userMessage(err, ErrMsgInvalidRequestSummary)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// userMessage returns the error text when it is short enough to show a
// player, otherwise the fallback.
func userMessage(err error, fallback string) string {
	msg := err.Error()
	if msg == "" || len(msg) > 200 {
		return fallback
	}
	return msg
}

// respondServiceError logs a failed operation and writes the mapped error
// response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapDomainError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
