package handlers

import (
	"net/http"

	"formatd/internal/iso8601"
	"formatd/internal/metrics"
)

// ValidationResponse reports whether a value matched.
type ValidationResponse struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

// ValidateISO8601 checks the "value" query parameter against the ISO-8601
// pattern. It only validates; nothing is parsed.
func (h *Handlers) ValidateISO8601(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")

	valid := iso8601.Valid(value)
	result := "invalid"
	if valid {
		result = "valid"
	}
	metrics.ISO8601ValidationsTotal.WithLabelValues(result).Inc()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, ValidationResponse{Value: value, Valid: valid})
}
