package domain

import "time"

// QRGrant is handed to an owner after issuing a workshop access code.
type QRGrant struct {
	Code          string
	SubmissionURL string
	Image         []byte // PNG
	ImageDataURL  string
	ExpiresAt     time.Time
	TTL           time.Duration
}
