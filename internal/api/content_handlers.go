package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

// SavedResponse is returned by admin writes. Redirect is where the panel
// goes next for the caller's role.
type SavedResponse struct {
	Item     interface{} `json:"item"`
	Redirect string      `json:"redirect"`
}

func savedResponse(r *http.Request, section string, item interface{}) SavedResponse {
	role := ""
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		role = claims.Role
	}
	return SavedResponse{Item: item, Redirect: service.DashboardPath(role, section)}
}

// ContentHandler serves CRUD for one content collection.
type ContentHandler[T any] struct {
	Service *service.ContentService[T]
	Section string
	// Filters maps query parameters to document fields for exact-match listing.
	Filters map[string]string
	// Fixed is merged into every list filter.
	Fixed map[string]interface{}
}

func NewContentHandler[T any](svc *service.ContentService[T], section string) *ContentHandler[T] {
	return &ContentHandler[T]{Service: svc, Section: section}
}

func (h *ContentHandler[T]) WithFilters(filters map[string]string) *ContentHandler[T] {
	h.Filters = filters
	return h
}

// Public returns a copy of the handler that only lists documents matching fixed.
func (h *ContentHandler[T]) Public(fixed map[string]interface{}) *ContentHandler[T] {
	c := *h
	c.Fixed = fixed
	return &c
}

func (h *ContentHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	filter := make(map[string]interface{})
	query := r.URL.Query()
	for param, field := range h.Filters {
		if v := query.Get(param); v != "" {
			filter[field] = queryValue(v)
		}
	}
	for k, v := range h.Fixed {
		filter[k] = v
	}
	docs, err := h.Service.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

func (h *ContentHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *ContentHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var payload T
	if !decodeJSON(w, r, &payload) {
		return
	}
	doc, err := h.Service.Create(r.Context(), &payload)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, savedResponse(r, h.Section, doc))
}

func (h *ContentHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	var payload T
	if !decodeJSON(w, r, &payload) {
		return
	}
	doc, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &payload)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, savedResponse(r, h.Section, doc))
}

func (h *ContentHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, savedResponse(r, h.Section, map[string]string{"message": "Deleted"}))
}

// SingletonHandler serves a content document that exists once (home, contact).
type SingletonHandler[T any] struct {
	Service *service.ContentService[T]
	Section string
}

func NewSingletonHandler[T any](svc *service.ContentService[T], section string) *SingletonHandler[T] {
	return &SingletonHandler[T]{Service: svc, Section: section}
}

func (h *SingletonHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.Current(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *SingletonHandler[T]) Save(w http.ResponseWriter, r *http.Request) {
	var payload T
	if !decodeJSON(w, r, &payload) {
		return
	}
	doc, err := h.Service.Save(r.Context(), &payload)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, savedResponse(r, h.Section, doc))
}

func queryValue(v string) interface{} {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}
