package db

import (
	"context"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"dustbinbackend/models"
)

// UsersRepository defines the persistence operations for users
type UsersRepository interface {
	GetUserByGoogleID(ctx context.Context, googleID string) (mo.Option[*models.User], error)
	GetUserByID(ctx context.Context, id int) (mo.Option[*models.User], error)
	CreateUser(ctx context.Context, googleID, email, name string, picture *string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id int, name string, picture *string) (*models.User, error)
}

// DustbinsRepository defines the persistence operations for dustbins
type DustbinsRepository interface {
	ListDustbins(ctx context.Context, status mo.Option[string]) ([]*models.Dustbin, error)
	GetDustbinByID(ctx context.Context, id int) (mo.Option[*models.Dustbin], error)
	CreateDustbin(
		ctx context.Context,
		latitude, longitude decimal.Decimal,
		address, description, reportedBy *string,
	) (*models.Dustbin, error)
	UpdateDustbin(ctx context.Context, id int, update models.DustbinUpdate) (mo.Option[*models.Dustbin], error)
	DeleteDustbin(ctx context.Context, id int) (bool, error)
}
