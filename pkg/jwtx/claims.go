package jwtx

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the session lifetime for owners.
const DefaultAccessTokenTTL = 24 * time.Hour

// Authentication method references carried in Claims.AMR.
const (
	AMRPassword = "pwd"
	AMROTP      = "otp"
)

// Claims identify an authenticated vehicle owner.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the owner at the time the token was minted.
	Email string `json:"email,omitempty"`

	// AMR lists how the owner authenticated, e.g. ["pwd","otp"].
	AMR []string `json:"amr,omitempty"`
}

// NewOwnerClaims builds claims for an owner session.
func NewOwnerClaims(ownerID, email, issuer string, amr []string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Email: email,
		AMR:   amr,
	}
}

func newJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// HasAMR reports whether the session was authenticated with method.
func (c *Claims) HasAMR(method string) bool {
	return slices.Contains(c.AMR, method)
}

// ValidateIssuer checks the iss claim. An empty expectation is not enforced.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateTimes checks exp and nbf against now, allowing leeway for skew.
func (c *Claims) ValidateTimes(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
