package api

import (
	"net/http"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type PriceTableHandler struct {
	prices service.PriceSource
}

func NewPriceTableHandler(prices service.PriceSource) *PriceTableHandler {
	return &PriceTableHandler{prices: prices}
}

// Get serves the price table the wizard's tour dropdowns are built from.
func (h *PriceTableHandler) Get(w http.ResponseWriter, r *http.Request) {
	table, err := h.prices.Table(r.Context())
	if err != nil {
		respondServiceError(w, r, apperrors.Unavailable("price table", err))
		return
	}
	respondJSON(w, http.StatusOK, entities.NewPricesResponse(table))
}
