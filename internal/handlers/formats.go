package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"formatd/internal/dateformat"
	"formatd/internal/logging"
	"formatd/internal/metrics"
	"formatd/internal/middleware"

	"github.com/gorilla/mux"
)

// maxRegisterBody bounds the size of a registration request body.
const maxRegisterBody = 4 << 10

// FormatResponse describes a registered rule.
type FormatResponse struct {
	Key     string `json:"key"`
	Kind    string `json:"kind"`
	Pattern string `json:"pattern"`
}

// RegisterRequest is the body of a format registration.
type RegisterRequest struct {
	Pattern string `json:"pattern"`
}

// RenderResponse is the result of rendering a value with a named format.
type RenderResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

func newFormatResponse(key string, rule dateformat.Rule) FormatResponse {
	return FormatResponse{
		Key:     key,
		Kind:    string(rule.Kind()),
		Pattern: rule.String(),
	}
}

// ListFormats returns every registered format ordered by key.
func (h *Handlers) ListFormats(w http.ResponseWriter, _ *http.Request) {
	entries := h.registry.Entries()

	response := make([]FormatResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, newFormatResponse(e.Key, e.Rule))
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// GetFormat returns the rule registered under the {key} path variable.
func (h *Handlers) GetFormat(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	rule, ok := h.registry.Lookup(key)
	if !ok {
		writeJSONError(w, "unknown format key: "+key, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, newFormatResponse(key, rule))
}

// RegisterFormat stores a literal pattern under {key}, replacing any rule
// already registered there, and persists it.
func (h *Handlers) RegisterFormat(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req RegisterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRegisterBody)).Decode(&req); err != nil {
		metrics.FormatRegistrationsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if key == "" || req.Pattern == "" {
		metrics.FormatRegistrationsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		writeJSONError(w, "key and pattern are required", http.StatusBadRequest)
		return
	}

	if err := h.store.SaveFormat(r.Context(), key, req.Pattern); err != nil {
		logging.Error("[%s] Failed to persist format %q: %v", middleware.RequestIDFromContext(r.Context()), key, err)
		metrics.FormatRegistrationsTotal.WithLabelValues(metrics.StatusError).Inc()
		writeJSONError(w, "failed to save format", http.StatusInternalServerError)
		return
	}

	rule := dateformat.Pattern(req.Pattern)
	if err := h.registry.Register(key, rule); err != nil {
		metrics.FormatRegistrationsTotal.WithLabelValues(metrics.StatusError).Inc()
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.FormatRegistrationsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.RegistryFormats.Set(float64(h.registry.Len()))
	logging.Info("[%s] Registered format %q = %q", middleware.RequestIDFromContext(r.Context()), key, req.Pattern)

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, newFormatResponse(key, rule))
}

// RenderFormat renders the "value" query parameter, an ISO-8601 timestamp,
// with the format registered under {key}. Without a value the current time
// in UTC is rendered.
func (h *Handlers) RenderFormat(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	value := r.URL.Query().Get("value")

	var (
		formatted string
		err       error
	)
	if value == "" {
		now := time.Now().UTC()
		value = now.Format(time.RFC3339Nano)
		formatted, err = h.registry.Format(now, key)
	} else {
		formatted, err = h.registry.FormatString(value, key)
	}

	switch {
	case errors.Is(err, dateformat.ErrUnknownFormatKey):
		metrics.FormatRendersTotal.WithLabelValues(metrics.UnknownKeyLabel, metrics.StatusUnknown).Inc()
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, dateformat.ErrInvalidValue):
		metrics.FormatRendersTotal.WithLabelValues(key, metrics.StatusInvalid).Inc()
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logging.Error("[%s] Unexpected render error for %q: %v", middleware.RequestIDFromContext(r.Context()), key, err)
		writeJSONError(w, "failed to render value", http.StatusInternalServerError)
		return
	}

	metrics.FormatRendersTotal.WithLabelValues(key, metrics.StatusSuccess).Inc()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, RenderResponse{
		Key:       key,
		Value:     value,
		Formatted: formatted,
	})
}
