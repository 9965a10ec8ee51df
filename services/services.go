package services

import (
	"context"

	"github.com/samber/mo"

	"dustbinbackend/models"
)

// UsersService defines the interface for authentication and user operations
type UsersService interface {
	SignInWithGoogle(ctx context.Context, idToken string) (*models.SignInResult, error)
	ValidateSessionToken(token string) (*models.SessionClaims, error)
	GetUserByID(ctx context.Context, id int) (mo.Option[*models.User], error)
}

// DustbinsService defines the interface for dustbin CRUD operations
type DustbinsService interface {
	ListDustbins(ctx context.Context, status mo.Option[string]) ([]*models.Dustbin, error)
	GetDustbinByID(ctx context.Context, id int) (mo.Option[*models.Dustbin], error)
	CreateDustbin(ctx context.Context, params CreateDustbinParams) (*models.Dustbin, error)
	UpdateDustbin(ctx context.Context, id int, params UpdateDustbinParams) (mo.Option[*models.Dustbin], error)
	DeleteDustbin(ctx context.Context, id int) (bool, error)
}

// CreateDustbinParams carries the client-supplied fields for a new dustbin.
type CreateDustbinParams struct {
	Latitude    float64
	Longitude   float64
	Address     *string
	Description *string
	ReportedBy  *string
}

// UpdateDustbinParams carries the client-supplied fields of a sparse patch.
// Absent fields were not present in the request body; a present field
// holding a nil pointer was sent as an explicit null.
type UpdateDustbinParams struct {
	Latitude    mo.Option[float64]
	Longitude   mo.Option[float64]
	Address     mo.Option[*string]
	Description mo.Option[*string]
	Status      mo.Option[string]
}
