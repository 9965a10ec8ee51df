package users

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"dustbinbackend/models"
)

// MockUsersService is a mock implementation of the services.UsersService interface
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) SignInWithGoogle(
	ctx context.Context,
	idToken string,
) (*models.SignInResult, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignInResult), args.Error(1)
}

func (m *MockUsersService) ValidateSessionToken(token string) (*models.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionClaims), args.Error(1)
}

func (m *MockUsersService) GetUserByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.User], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.User]), args.Error(1)
}
