package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type WizardErrorResponse struct {
	Error  string              `json:"error"`
	Wizard entities.WizardView `json:"wizard"`
}

type WizardHandler struct {
	service *service.WizardService
}

func NewWizardHandler(svc *service.WizardService) *WizardHandler {
	return &WizardHandler{service: svc}
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Start(r.Context())
	h.respond(w, r, http.StatusCreated, state, err)
}

func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, state, err)
}

func (h *WizardHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Discard(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WizardHandler) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req entities.PersonalInfo
	if !decodeJSON(w, r, &req) {
		return
	}
	state, err := h.service.UpdatePersonal(r.Context(), mux.Vars(r)["id"], req)
	h.respond(w, r, http.StatusOK, state, err)
}

func (h *WizardHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingSelection
	if !decodeJSON(w, r, &req) {
		return
	}
	state, err := h.service.UpdateSelection(r.Context(), mux.Vars(r)["id"], req)
	h.respond(w, r, http.StatusOK, state, err)
}

func (h *WizardHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req entities.PaymentDetails
	if !decodeJSON(w, r, &req) {
		return
	}
	state, err := h.service.UpdatePayment(r.Context(), mux.Vars(r)["id"], req)
	h.respond(w, r, http.StatusOK, state, err)
}

func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Next(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, state, err)
}

func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Previous(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, state, err)
}

func (h *WizardHandler) Price(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Price(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Submit(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, state, err)
}

// respond sends the masked wizard. When the service returned both a state and
// an error, the state carries the message to show and is sent with the error.
func (h *WizardHandler) respond(w http.ResponseWriter, r *http.Request, status int, state *entities.WizardState, err error) {
	if err != nil {
		if state == nil {
			respondServiceError(w, r, err)
			return
		}
		code := apperrors.StatusFor(err)
		respondJSON(w, code, WizardErrorResponse{
			Error:  errorMessage(r, code, err),
			Wizard: h.service.View(context.WithoutCancel(r.Context()), state),
		})
		return
	}
	respondJSON(w, status, h.service.View(r.Context(), state))
}
