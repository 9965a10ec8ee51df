package appctx

import (
	"context"

	"dustbinbackend/models"
)

// Context key for storing the authenticated session
type contextKey string

const SessionContextKey contextKey = "session"

// SetSession adds the verified session claims to the request context
func SetSession(ctx context.Context, claims *models.SessionClaims) context.Context {
	return context.WithValue(ctx, SessionContextKey, claims)
}

// GetSession extracts the verified session claims from the request context
func GetSession(ctx context.Context) (*models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionContextKey).(*models.SessionClaims)
	return claims, ok
}
