package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type BookingLookup interface {
	GetByConfirmationID(ctx context.Context, confirmationID string) (*db.Booking, error)
}

// BookingHandler accepts a complete booking in one request, for clients that
// keep the wizard state themselves, and lets customers look a booking up.
type BookingHandler struct {
	service service.BookingService
	lookup  BookingLookup
}

func NewBookingHandler(svc service.BookingService, lookup BookingLookup) *BookingHandler {
	return &BookingHandler{service: svc, lookup: lookup}
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	conf, err := h.service.Submit(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, conf)
}

// Get returns a booking only to a caller who also knows its email address.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	booking, err := h.lookup.GetByConfirmationID(r.Context(), mux.Vars(r)["confirmationId"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if !strings.EqualFold(booking.Email, email) {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondJSON(w, http.StatusOK, booking)
}
