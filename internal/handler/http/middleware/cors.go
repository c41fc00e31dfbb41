// Package middleware provides the CORS middleware for the public API.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// Wildcard allows every origin.
const Wildcard = "*"

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// Validator decides which origins receive CORS headers.
	Validator OriginValidator

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// ExposedHeaders are response headers readable by browser clients.
	ExposedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Logger receives policy violations. Nil disables logging.
	Logger *slog.Logger
}

// NewCORSConfig returns a configuration for the given origins.
// An empty list or one containing "*" allows every origin.
func NewCORSConfig(origins []string) CORSConfig {
	var validator OriginValidator = AnyOrigin{}
	for _, o := range origins {
		if strings.TrimSpace(o) == Wildcard {
			validator = AnyOrigin{}
			origins = nil
			break
		}
	}
	if len(origins) > 0 {
		validator = NewWhitelistValidator(origins)
	}

	return CORSConfig{
		Validator:      validator,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-Id"},
		MaxAge:         86400,
	}
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - If Origin header is empty, skip CORS processing (same-origin request)
//   - If Origin is not allowed, log and continue without CORS headers
//   - With a wildcard policy, Access-Control-Allow-Origin is "*" and
//     credentials are not allowed
//   - With a whitelist, the request origin is echoed back
//   - Preflight OPTIONS requests are answered with 204 and never reach next
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)
	_, wildcard := config.Validator.(AnyOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", Wildcard)
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			if exposed != "" {
				w.Header().Set("Access-Control-Expose-Headers", exposed)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
