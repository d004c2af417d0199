package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/garage/pkg/jwtx"
)

// InitSigner builds the HS256 signer for owner sessions.
//
// Without JWT_SECRET a random secret is generated. Sessions then end
// whenever the service restarts.
func InitSigner(cfg Config, logger *slog.Logger) (*jwtx.HS256, error) {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, jwtx.MinSecretLength)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		logger.Warn("JWT_SECRET not set, using an ephemeral secret; sessions will not survive restarts")
	}

	return jwtx.NewHS256(secret, cfg.JWTIssuer)
}
