package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
)

// EquipmentHandler serves gear purchase, upkeep and resale endpoints.
type EquipmentHandler struct {
	engine *engine.Engine
}

func NewEquipmentHandler(eng *engine.Engine) *EquipmentHandler {
	return &EquipmentHandler{engine: eng}
}

// PurchaseEquipmentRequest is the request body for buying gear
type PurchaseEquipmentRequest struct {
	CatalogItemID uuid.UUID `json:"catalog_item_id" validate:"required"`
}

// HandlePurchase buys a catalog item at full durability
func (h *EquipmentHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseEquipmentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase equipment"); err != nil {
		return
	}

	item, err := h.engine.PurchaseEquipment(r.Context(), req.CatalogItemID)
	if err != nil {
		respondServiceError(w, r, "Purchase equipment", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: item})
}

// EquipmentActionRequest identifies an owned piece of gear
type EquipmentActionRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" validate:"required"`
}

// repairResponse reports what a repair cost
type repairResponse struct {
	EquipmentID uuid.UUID       `json:"equipment_id"`
	Cost        decimal.Decimal `json:"cost"`
}

// HandleRepair restores an item to full durability for a durability-scaled fee
func (h *EquipmentHandler) HandleRepair(w http.ResponseWriter, r *http.Request) {
	var req EquipmentActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Repair equipment"); err != nil {
		return
	}

	cost, err := h.engine.RepairEquipment(r.Context(), req.EquipmentID)
	if err != nil {
		respondServiceError(w, r, "Repair equipment", err)
		return
	}

	respondJSON(w, http.StatusOK, repairResponse{EquipmentID: req.EquipmentID, Cost: cost})
}

// sellResponse reports resale proceeds
type sellResponse struct {
	EquipmentID uuid.UUID       `json:"equipment_id"`
	Proceeds    decimal.Decimal `json:"proceeds"`
}

// HandleSell sells an owned item at its depreciated value
func (h *EquipmentHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req EquipmentActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell equipment"); err != nil {
		return
	}

	proceeds, err := h.engine.SellEquipment(r.Context(), req.EquipmentID)
	if err != nil {
		respondServiceError(w, r, "Sell equipment", err)
		return
	}

	respondJSON(w, http.StatusOK, sellResponse{EquipmentID: req.EquipmentID, Proceeds: proceeds})
}

// HandleGetRepairs lists owned items below the repair threshold
func (h *EquipmentHandler) HandleGetRepairs(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.EquipmentNeedingRepair()
	if err != nil {
		respondServiceError(w, r, "Get repairs", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}

// HandleGetBestBonus returns the best practice bonus an owned item gives a skill
func (h *EquipmentHandler) HandleGetBestBonus(w http.ResponseWriter, r *http.Request) {
	skill, ok := GetQueryParam(r, w, "skill")
	if !ok {
		return
	}

	bonus, err := h.engine.BestEquipmentBonus(domain.SkillType(skill))
	if err != nil {
		respondServiceError(w, r, "Get best bonus", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"skill": skill,
		"bonus": bonus,
	})
}
