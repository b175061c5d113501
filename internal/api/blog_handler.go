package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type CommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type BlogHandler struct {
	service *service.BlogService
}

func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{service: svc}
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	comment, err := h.service.AddComment(r.Context(), mux.Vars(r)["id"], entities.Comment{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

func (h *BlogHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.DeleteComment(r.Context(), vars["id"], vars["commentId"]); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, savedResponse(r, service.SectionBlogs, map[string]string{"message": "Comment deleted"}))
}
