package clients

import (
	"context"
)

// GoogleTokenClaims holds the identity claims extracted from a verified
// Google ID token.
type GoogleTokenClaims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// GoogleTokenVerifier verifies a Google-issued ID token and returns its
// identity claims. Verification covers signature and audience; claim
// completeness is the caller's concern.
type GoogleTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleTokenClaims, error)
}
