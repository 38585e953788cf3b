package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eargollo/plotify/internal/chart"
	"github.com/eargollo/plotify/internal/report"
)

// Chart handles POST /api/chart. The optional form field "attribute"
// restricts the chart to one attribute column; a blank value means all.
func Chart(w http.ResponseWriter, r *http.Request) {
	attribute := r.PostFormValue("attribute")
	if strings.TrimSpace(attribute) == "" {
		attribute = ""
	}

	st := store(w, r)
	if st == nil {
		return
	}
	teachers, attrs, counts, err := report.Input(r.Context(), st)
	if err != nil {
		slog.Error("chart: query", "error", err)
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load chart data")
		return
	}

	c, err := chart.Build(teachers, attrs, counts, attribute)
	if errors.Is(err, chart.ErrUnknownAttribute) {
		writeError(w, http.StatusBadRequest, "UNKNOWN_ATTRIBUTE", "Unknown attribute: "+attribute)
		return
	}
	if err != nil {
		slog.Error("chart: build", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}
