package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

// ListEditHandler returns a handler applying one add / update / remove edit to
// a nested list of a content document. Routes without an {id} variable edit
// the singleton document.
func ListEditHandler[D any, T any, PT interface {
	*T
	entities.FieldSetter
}](svc *service.ContentService[D], section string, list func(doc *D) *[]T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var edit entities.ListEdit[T]
		if !decodeJSON(w, r, &edit) {
			return
		}
		doc, err := svc.Edit(r.Context(), mux.Vars(r)["id"], func(doc *D) error {
			return entities.ApplyListEdit[T, PT](list(doc), edit)
		})
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, savedResponse(r, section, doc))
	}
}
