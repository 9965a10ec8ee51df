package dustbins

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"dustbinbackend/core"
	"dustbinbackend/db"
	"dustbinbackend/models"
	"dustbinbackend/services"
)

const (
	maxAddressLength     = 500
	maxDescriptionLength = 1000
)

type DustbinsService struct {
	dustbinsRepo db.DustbinsRepository
}

func NewDustbinsService(repo db.DustbinsRepository) *DustbinsService {
	return &DustbinsService{dustbinsRepo: repo}
}

// validateCoordinates checks latitude then longitude, number validity
// before range, and returns the first failure message or "".
func validateCoordinates(lat, lon float64) string {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return "Latitude must be a valid number"
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return "Longitude must be a valid number"
	}
	if lat < -90 || lat > 90 {
		return "Latitude must be between -90 and 90"
	}
	if lon < -180 || lon > 180 {
		return "Longitude must be between -180 and 180"
	}
	return ""
}

func validStatusesList() string {
	names := make([]string, 0, len(models.DustbinStatuses))
	for _, status := range models.DustbinStatuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}

func (s *DustbinsService) ListDustbins(
	ctx context.Context,
	status mo.Option[string],
) ([]*models.Dustbin, error) {
	dustbins, err := s.dustbinsRepo.ListDustbins(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list dustbins: %w", err)
	}
	return dustbins, nil
}

func (s *DustbinsService) GetDustbinByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.Dustbin], error) {
	maybeDustbin, err := s.dustbinsRepo.GetDustbinByID(ctx, id)
	if err != nil {
		return mo.None[*models.Dustbin](), fmt.Errorf("failed to get dustbin: %w", err)
	}
	return maybeDustbin, nil
}

// CreateDustbin validates the supplied fields and inserts a new dustbin
// with status defaulted to active.
func (s *DustbinsService) CreateDustbin(
	ctx context.Context,
	params services.CreateDustbinParams,
) (*models.Dustbin, error) {
	log.Printf("📋 Starting to create dustbin at (%f, %f)", params.Latitude, params.Longitude)

	if msg := validateCoordinates(params.Latitude, params.Longitude); msg != "" {
		return nil, core.NewValidationError("Invalid coordinates", msg)
	}

	if params.Address != nil && utf8.RuneCountInString(*params.Address) > maxAddressLength {
		return nil, core.NewValidationError(
			"Invalid address",
			"Address must be less than 500 characters",
		)
	}

	if params.Description != nil && utf8.RuneCountInString(*params.Description) > maxDescriptionLength {
		return nil, core.NewValidationError(
			"Invalid description",
			"Description must be less than 1000 characters",
		)
	}

	dustbin, err := s.dustbinsRepo.CreateDustbin(
		ctx,
		decimal.NewFromFloat(params.Latitude),
		decimal.NewFromFloat(params.Longitude),
		params.Address,
		params.Description,
		params.ReportedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dustbin: %w", err)
	}

	log.Printf("📋 Completed successfully - created dustbin with ID: %d", dustbin.ID)
	return dustbin, nil
}

// UpdateDustbin applies a sparse patch. Only supplied fields are validated
// and written. A supplied coordinate is checked against the other supplied
// coordinate, or 0 when its companion is absent.
func (s *DustbinsService) UpdateDustbin(
	ctx context.Context,
	id int,
	params services.UpdateDustbinParams,
) (mo.Option[*models.Dustbin], error) {
	log.Printf("📋 Starting to update dustbin with ID: %d", id)

	maybeExisting, err := s.dustbinsRepo.GetDustbinByID(ctx, id)
	if err != nil {
		return mo.None[*models.Dustbin](), fmt.Errorf("failed to get dustbin: %w", err)
	}
	if maybeExisting.IsAbsent() {
		return mo.None[*models.Dustbin](), nil
	}

	update := models.DustbinUpdate{}

	if latitude, ok := params.Latitude.Get(); ok {
		msg := validateCoordinates(latitude, params.Longitude.OrElse(0))
		if msg != "" && strings.Contains(msg, "Latitude") {
			return mo.None[*models.Dustbin](), core.NewValidationError("Invalid coordinates", msg)
		}
		update.Latitude = mo.Some(decimal.NewFromFloat(latitude))
	}

	if longitude, ok := params.Longitude.Get(); ok {
		msg := validateCoordinates(params.Latitude.OrElse(0), longitude)
		if msg != "" && strings.Contains(msg, "Longitude") {
			return mo.None[*models.Dustbin](), core.NewValidationError("Invalid coordinates", msg)
		}
		update.Longitude = mo.Some(decimal.NewFromFloat(longitude))
	}

	if address, ok := params.Address.Get(); ok {
		update.Address = mo.Some(address)
	}

	if description, ok := params.Description.Get(); ok {
		update.Description = mo.Some(description)
	}

	if status, ok := params.Status.Get(); ok {
		if !models.DustbinStatus(status).IsValid() {
			return mo.None[*models.Dustbin](), core.NewValidationError(
				"Invalid status",
				fmt.Sprintf("Status must be one of: %s", validStatusesList()),
			)
		}
		update.Status = mo.Some(models.DustbinStatus(status))
	}

	if update.IsEmpty() {
		return mo.None[*models.Dustbin](), core.NewValidationError(
			"No fields to update",
			"Provide at least one field to update",
		)
	}

	maybeDustbin, err := s.dustbinsRepo.UpdateDustbin(ctx, id, update)
	if err != nil {
		return mo.None[*models.Dustbin](), fmt.Errorf("failed to update dustbin: %w", err)
	}

	log.Printf("📋 Completed successfully - updated dustbin with ID: %d", id)
	return maybeDustbin, nil
}

// DeleteDustbin hard-deletes a dustbin. Returns false when no such row exists.
func (s *DustbinsService) DeleteDustbin(ctx context.Context, id int) (bool, error) {
	log.Printf("📋 Starting to delete dustbin with ID: %d", id)

	deleted, err := s.dustbinsRepo.DeleteDustbin(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete dustbin: %w", err)
	}

	log.Printf("📋 Completed delete for dustbin ID: %d (existed: %t)", id, deleted)
	return deleted, nil
}
