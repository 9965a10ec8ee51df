package dustbins

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"dustbinbackend/models"
	"dustbinbackend/services"
)

// MockDustbinsService is a mock implementation of the services.DustbinsService interface
type MockDustbinsService struct {
	mock.Mock
}

func (m *MockDustbinsService) ListDustbins(
	ctx context.Context,
	status mo.Option[string],
) ([]*models.Dustbin, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Dustbin), args.Error(1)
}

func (m *MockDustbinsService) GetDustbinByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.Dustbin], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Dustbin]), args.Error(1)
}

func (m *MockDustbinsService) CreateDustbin(
	ctx context.Context,
	params services.CreateDustbinParams,
) (*models.Dustbin, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dustbin), args.Error(1)
}

func (m *MockDustbinsService) UpdateDustbin(
	ctx context.Context,
	id int,
	params services.UpdateDustbinParams,
) (mo.Option[*models.Dustbin], error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(mo.Option[*models.Dustbin]), args.Error(1)
}

func (m *MockDustbinsService) DeleteDustbin(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
