package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dustbinbackend/models"
)

// Ptr returns a pointer to the given value, for building optional fields
// in test fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// NewTestUser builds a user fixture with a unique Google subject and email
// to avoid unique-constraint collisions across tests.
func NewTestUser(id int) *models.User {
	suffix := uuid.New().String()
	now := time.Now().UTC()
	return &models.User{
		ID:        id,
		GoogleID:  "google-sub-" + suffix,
		Email:     fmt.Sprintf("test-%s@example.com", suffix),
		Name:      "Test User",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestDustbin builds a dustbin fixture with valid coordinates.
func NewTestDustbin(id int) *models.Dustbin {
	now := time.Now().UTC()
	return &models.Dustbin{
		ID:        id,
		Latitude:  decimal.NewFromFloat(12.9),
		Longitude: decimal.NewFromFloat(77.6),
		Status:    models.DustbinStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
