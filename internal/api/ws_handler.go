package api

import (
	"net/http"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/ws"
)

type WSHandler struct {
	hub            *ws.Hub
	allowedOrigins []string
}

func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	return &WSHandler{hub: hub, allowedOrigins: allowedOrigins}
}

func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.hub.Serve(w, r, claims.Email, h.allowedOrigins)
}
