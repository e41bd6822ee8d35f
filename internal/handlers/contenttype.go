package handlers

import (
	"errors"
	"net/http"

	"formatd/internal/mediatypes"
	"formatd/internal/metrics"
)

// ContentTypeResponse is the result of resolving a file name.
type ContentTypeResponse struct {
	Path        string              `json:"path"`
	Extension   string              `json:"extension"`
	ContentType string              `json:"contentType"`
	FileType    mediatypes.FileType `json:"fileType"`
}

// GetContentType resolves the content type of the "path" query parameter.
func (h *Handlers) GetContentType(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, "path parameter is required", http.StatusBadRequest)
		return
	}

	ext := mediatypes.ExtensionOf(path)
	contentType, err := mediatypes.Lookup(ext)
	if errors.Is(err, mediatypes.ErrUnknownExtension) {
		metrics.ContentTypeLookupsTotal.WithLabelValues(metrics.StatusUnknown).Inc()
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}

	metrics.ContentTypeLookupsTotal.WithLabelValues(metrics.StatusSuccess).Inc()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, ContentTypeResponse{
		Path:        path,
		Extension:   ext,
		ContentType: contentType,
		FileType:    mediatypes.GetFileType(ext),
	})
}

// ListContentTypes returns the whole extension table.
func (h *Handlers) ListContentTypes(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, mediatypes.ContentTypes)
}
