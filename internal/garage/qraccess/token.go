package qraccess

import (
	"strings"
	"time"
)

// AccessToken grants write access to the maintenance log of ResourceID
// until ExpiresAt.
type AccessToken struct {
	Code       string
	ResourceID string
	ExpiresAt  time.Time
}

// ExpiredAt reports whether the token is no longer usable at now.
func (t AccessToken) ExpiredAt(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Redact keeps the first group of a code for logging.
func Redact(code string) string {
	if code == "" {
		return ""
	}
	if head, _, ok := strings.Cut(code, Separator); ok {
		return head + Separator + "****"
	}
	if len(code) > 4 {
		return code[:4] + "****"
	}
	return "****"
}
