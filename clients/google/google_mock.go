package google

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dustbinbackend/clients"
)

// MockGoogleTokenVerifier is a mock implementation of the clients.GoogleTokenVerifier interface
type MockGoogleTokenVerifier struct {
	mock.Mock
}

func (m *MockGoogleTokenVerifier) VerifyIDToken(
	ctx context.Context,
	idToken string,
) (*clients.GoogleTokenClaims, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.GoogleTokenClaims), args.Error(1)
}
