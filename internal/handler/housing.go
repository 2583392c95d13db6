package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
)

// HousingHandler serves the rental endpoints: moving in, moving between
// tiers and paying rent.
type HousingHandler struct {
	engine *engine.Engine
}

func NewHousingHandler(eng *engine.Engine) *HousingHandler {
	return &HousingHandler{engine: eng}
}

// HousingRequest names a housing tier
type HousingRequest struct {
	HousingType string `json:"housing_type" validate:"required,housingtype"`
}

// HandleRent moves the player into their first place
func (h *HousingHandler) HandleRent(w http.ResponseWriter, r *http.Request) {
	var req HousingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rent housing"); err != nil {
		return
	}

	housing, err := h.engine.RentHousing(r.Context(), domain.HousingType(req.HousingType))
	if err != nil {
		respondServiceError(w, r, "Rent housing", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: housing})
}

// moveResponse reports the cost (or refund) of a housing move
type moveResponse struct {
	HousingType string          `json:"housing_type"`
	Amount      decimal.Decimal `json:"amount"`
}

// HandleUpgrade moves to a better tier, paying the deposit difference
func (h *HousingHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req HousingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade housing"); err != nil {
		return
	}

	cost, err := h.engine.UpgradeHousing(r.Context(), domain.HousingType(req.HousingType))
	if err != nil {
		respondServiceError(w, r, "Upgrade housing", err)
		return
	}

	respondJSON(w, http.StatusOK, moveResponse{HousingType: req.HousingType, Amount: cost})
}

// HandleDowngrade moves to a cheaper tier, recovering part of the deposit
func (h *HousingHandler) HandleDowngrade(w http.ResponseWriter, r *http.Request) {
	var req HousingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Downgrade housing"); err != nil {
		return
	}

	refund, err := h.engine.DowngradeHousing(r.Context(), domain.HousingType(req.HousingType))
	if err != nil {
		respondServiceError(w, r, "Downgrade housing", err)
		return
	}

	respondJSON(w, http.StatusOK, moveResponse{HousingType: req.HousingType, Amount: refund})
}

// PayRentRequest is the request body for paying rent in advance
type PayRentRequest struct {
	Weeks int `json:"weeks" validate:"required,min=1,max=52"`
}

// payRentResponse reports the rent paid
type payRentResponse struct {
	Weeks  int             `json:"weeks"`
	Amount decimal.Decimal `json:"amount"`
}

// HandlePayRent pays rent for the given number of weeks
func (h *HousingHandler) HandlePayRent(w http.ResponseWriter, r *http.Request) {
	var req PayRentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Pay rent"); err != nil {
		return
	}

	amount, err := h.engine.PayRent(r.Context(), req.Weeks)
	if err != nil {
		respondServiceError(w, r, "Pay rent", err)
		return
	}

	respondJSON(w, http.StatusOK, payRentResponse{Weeks: req.Weeks, Amount: amount})
}
