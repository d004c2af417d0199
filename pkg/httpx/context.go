package httpx

import (
	"context"

	"github.com/aussiebroadwan/garage/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyOwnerID ctxKey = "owner_id"
	ctxKeyClaims  ctxKey = "claims"
)

// WithOwner stores the authenticated owner on ctx.
func WithOwner(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyOwnerID, c.Subject)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// OwnerID returns the authenticated owner ID, or "" for anonymous requests.
func OwnerID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyOwnerID).(string)
	return id
}

// ClaimsFrom returns the verified session claims.
func ClaimsFrom(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
