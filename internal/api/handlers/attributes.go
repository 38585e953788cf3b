package handlers

import (
	"log/slog"
	"net/http"

	"github.com/eargollo/plotify/internal/report"
)

type attributesResponse struct {
	Attributes []report.Attribute `json:"attributes"`
}

// Attributes handles GET /api/attributes.
func Attributes(w http.ResponseWriter, r *http.Request) {
	st := store(w, r)
	if st == nil {
		return
	}
	attrs, err := report.Attributes(r.Context(), st)
	if err != nil {
		slog.Error("attributes: query", "error", err)
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to list attributes")
		return
	}
	writeJSON(w, http.StatusOK, attributesResponse{Attributes: attrs})
}
