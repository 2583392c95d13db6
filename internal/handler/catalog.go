package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// CatalogHandler serves the static world data clients need before and
// during play: cities, venues and the equipment shop.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// HandleGetCities lists the starting cities
func (h *CatalogHandler) HandleGetCities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.catalog.Cities()})
}

// HandleGetVenues lists venues, optionally filtered by city_id
func (h *CatalogHandler) HandleGetVenues(w http.ResponseWriter, r *http.Request) {
	cityParam := GetOptionalQueryParam(r, "city_id", "")
	if cityParam == "" {
		respondJSON(w, http.StatusOK, DataResponse{Data: h.catalog.Venues()})
		return
	}

	cityID, err := uuid.Parse(cityParam)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid city_id query parameter", "value", cityParam)
		respondError(w, http.StatusBadRequest, "Invalid city_id parameter")
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: h.catalog.VenuesInCity(cityID)})
}

// HandleGetEquipment lists the purchasable equipment catalog
func (h *CatalogHandler) HandleGetEquipment(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.catalog.EquipmentItems()})
}
