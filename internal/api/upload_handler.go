package api

import (
	"net/http"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

const maxUploadBytes = 20 << 20

type UploadHandler struct {
	store service.BlobStore
}

func NewUploadHandler(store service.BlobStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload expects a multipart form with a "file" part and a "folder" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	url, err := h.store.Upload(r.Context(), file, header.Filename, r.FormValue("folder"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
