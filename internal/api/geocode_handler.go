package api

import (
	"net/http"
	"strconv"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type GeocodeHandler struct {
	geocoder service.Geocoder
}

func NewGeocodeHandler(geocoder service.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

func (h *GeocodeHandler) Forward(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		respondError(w, http.StatusBadRequest, "address is required")
		return
	}
	point, err := h.geocoder.Forward(r.Context(), address)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, point)
}

func (h *GeocodeHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		respondError(w, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}
	address, err := h.geocoder.Reverse(r.Context(), entities.LatLng{Lat: lat, Lng: lng})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"address": address})
}
