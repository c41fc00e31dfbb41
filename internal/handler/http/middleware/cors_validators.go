package middleware

import (
	"strings"
)

// OriginValidator decides whether an Origin header value is allowed.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// AnyOrigin allows every non-empty origin.
type AnyOrigin struct{}

// IsAllowed reports whether origin is non-empty.
func (AnyOrigin) IsAllowed(origin string) bool {
	return origin != ""
}

// WhitelistValidator implements exact-match origin validation.
// Comparison ignores case and a trailing slash.
type WhitelistValidator struct {
	allowedOrigins map[string]struct{}
}

// NewWhitelistValidator creates a WhitelistValidator. Empty entries are dropped.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if origin = normalizeOrigin(origin); origin != "" {
			allowed[origin] = struct{}{}
		}
	}
	return &WhitelistValidator{allowedOrigins: allowed}
}

// IsAllowed checks if the given origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	_, ok := v.allowedOrigins[origin]
	return ok
}

func normalizeOrigin(origin string) string {
	origin = strings.ToLower(strings.TrimSpace(origin))
	return strings.TrimSuffix(origin, "/")
}
