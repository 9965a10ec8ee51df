package db

import (
	"context"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"dustbinbackend/models"
)

// MockUsersRepository is a mock implementation of the UsersRepository interface
type MockUsersRepository struct {
	mock.Mock
}

func (m *MockUsersRepository) GetUserByGoogleID(
	ctx context.Context,
	googleID string,
) (mo.Option[*models.User], error) {
	args := m.Called(ctx, googleID)
	return args.Get(0).(mo.Option[*models.User]), args.Error(1)
}

func (m *MockUsersRepository) GetUserByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.User], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.User]), args.Error(1)
}

func (m *MockUsersRepository) CreateUser(
	ctx context.Context,
	googleID, email, name string,
	picture *string,
) (*models.User, error) {
	args := m.Called(ctx, googleID, email, name, picture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUsersRepository) UpdateUserProfile(
	ctx context.Context,
	id int,
	name string,
	picture *string,
) (*models.User, error) {
	args := m.Called(ctx, id, name, picture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockDustbinsRepository is a mock implementation of the DustbinsRepository interface
type MockDustbinsRepository struct {
	mock.Mock
}

func (m *MockDustbinsRepository) ListDustbins(
	ctx context.Context,
	status mo.Option[string],
) ([]*models.Dustbin, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Dustbin), args.Error(1)
}

func (m *MockDustbinsRepository) GetDustbinByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.Dustbin], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Dustbin]), args.Error(1)
}

func (m *MockDustbinsRepository) CreateDustbin(
	ctx context.Context,
	latitude, longitude decimal.Decimal,
	address, description, reportedBy *string,
) (*models.Dustbin, error) {
	args := m.Called(ctx, latitude, longitude, address, description, reportedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dustbin), args.Error(1)
}

func (m *MockDustbinsRepository) UpdateDustbin(
	ctx context.Context,
	id int,
	update models.DustbinUpdate,
) (mo.Option[*models.Dustbin], error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(mo.Option[*models.Dustbin]), args.Error(1)
}

func (m *MockDustbinsRepository) DeleteDustbin(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
