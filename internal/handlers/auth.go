package handlers

import (
	"net/http"
	"strings"

	"formatd/internal/logging"
	"formatd/internal/metrics"
	"formatd/internal/middleware"

	"golang.org/x/crypto/bcrypt"
)

const bearerPrefix = "Bearer "

// RequireAdmin wraps next so it only runs for requests carrying a bearer
// token that matches the configured bcrypt hash. Without a configured hash
// every request is refused with 403.
func (h *Handlers) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.adminTokenHash == "" {
			metrics.AuthAttemptsTotal.WithLabelValues("disabled").Inc()
			writeJSONError(w, "format registration is disabled", http.StatusForbidden)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
			w.Header().Set("WWW-Authenticate", `Bearer realm="formatd"`)
			writeJSONError(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.adminTokenHash), []byte(token)); err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
			logging.Warn("[%s] Rejected admin token from %s", middleware.RequestIDFromContext(r.Context()), r.RemoteAddr)
			w.Header().Set("WWW-Authenticate", `Bearer realm="formatd", error="invalid_token"`)
			writeJSONError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
