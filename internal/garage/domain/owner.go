package domain

import "time"

// Owner is a registered vehicle owner.
type Owner struct {
	ID           string
	Name         string
	NationalID   string // unique government ID
	Email        string // unique, stored lower-case
	Phone        string
	PasswordHash string
	TOTPSecret   string // empty until enrolment starts
	TOTPEnabled  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is an issued owner access token.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

type TOTPEnrollment struct {
	Secret     string // base32
	URL        string // otpauth:// URL
	QRImageURL string // data:image/png;base64,...
}
