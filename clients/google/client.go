package google

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"dustbinbackend/clients"
)

// GoogleClient implements the clients.GoogleTokenVerifier interface using
// Google's idtoken validator. The configured client ID is the expected
// token audience.
type GoogleClient struct {
	clientID string
}

// NewGoogleClient creates a new Google ID-token verifier for the given
// OAuth client ID
func NewGoogleClient(clientID string) clients.GoogleTokenVerifier {
	return &GoogleClient{clientID: clientID}
}

// VerifyIDToken validates the token's signature against Google's published
// keys and checks the audience, then extracts the identity claims.
func (c *GoogleClient) VerifyIDToken(
	ctx context.Context,
	idTokenStr string,
) (*clients.GoogleTokenClaims, error) {
	payload, err := idtoken.Validate(ctx, idTokenStr, c.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", err)
	}

	return &clients.GoogleTokenClaims{
		Subject: payload.Subject,
		Email:   stringClaim(payload, "email"),
		Name:    stringClaim(payload, "name"),
		Picture: stringClaim(payload, "picture"),
	}, nil
}

func stringClaim(payload *idtoken.Payload, key string) string {
	value, _ := payload.Claims[key].(string)
	return value
}
