package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type AdminHandler struct {
	admin         *service.AdminService
	notifications *service.NotificationService
}

func NewAdminHandler(admin *service.AdminService, notifications *service.NotificationService) *AdminHandler {
	return &AdminHandler{admin: admin, notifications: notifications}
}

type MeResponse struct {
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Sections  []string `json:"sections"`
	Dashboard string   `json:"dashboard"`
}

type AllowedSectionsRequest struct {
	Sections []string `json:"sections"`
}

// Me tells the admin panel who is logged in and which sections to show.
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sections := service.KnownSections
	if !claims.IsSuperAdmin() {
		allowed, err := h.admin.AllowedSections(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		sections = allowed.Sections
	}
	respondJSON(w, http.StatusOK, MeResponse{
		Email:     claims.Email,
		Role:      claims.Role,
		Sections:  sections,
		Dashboard: service.DashboardPath(claims.Role, service.SectionHome),
	})
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entities.BookingFilter{
		Status:   query.Get("status"),
		TourType: query.Get("tour_type"),
		Date:     query.Get("date"),
	}
	var err error
	if v := query.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}
	if v := query.Get("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid offset")
			return
		}
	}

	list, err := h.admin.ListBookings(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) GetAllowedSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.admin.AllowedSections(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sections": sections.Sections,
		"known":    service.KnownSections,
	})
}

func (h *AdminHandler) SetAllowedSections(w http.ResponseWriter, r *http.Request) {
	var req AllowedSectionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sections, err := h.admin.SetAllowedSections(r.Context(), req.Sections)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sections)
}

func (h *AdminHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (h *AdminHandler) UnreadNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.notifications.Unread(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
