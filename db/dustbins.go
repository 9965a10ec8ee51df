package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"dustbinbackend/models"
)

type PostgresDustbinsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for dustbins table
var dustbinsColumns = []string{
	"id",
	"latitude",
	"longitude",
	"address",
	"description",
	"status",
	"reported_by",
	"created_at",
	"updated_at",
}

func NewPostgresDustbinsRepository(db *sqlx.DB, schema string) *PostgresDustbinsRepository {
	return &PostgresDustbinsRepository{db: db, schema: schema}
}

// ListDustbins returns all dustbins newest-first, optionally filtered by
// exact status match.
func (r *PostgresDustbinsRepository) ListDustbins(
	ctx context.Context,
	status mo.Option[string],
) ([]*models.Dustbin, error) {
	columnsStr := strings.Join(dustbinsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.dustbins
		ORDER BY created_at DESC`, columnsStr, r.schema)
	args := []any{}

	if statusValue, ok := status.Get(); ok {
		query = fmt.Sprintf(`
			SELECT %s
			FROM %s.dustbins
			WHERE status = $1
			ORDER BY created_at DESC`, columnsStr, r.schema)
		args = append(args, statusValue)
	}

	dustbins := []*models.Dustbin{}
	if err := r.db.SelectContext(ctx, &dustbins, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list dustbins: %w", err)
	}

	return dustbins, nil
}

func (r *PostgresDustbinsRepository) GetDustbinByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.Dustbin], error) {
	columnsStr := strings.Join(dustbinsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.dustbins
		WHERE id = $1`, columnsStr, r.schema)

	dustbin := &models.Dustbin{}
	err := r.db.QueryRowxContext(ctx, query, id).StructScan(dustbin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Dustbin](), nil
		}
		return mo.None[*models.Dustbin](), fmt.Errorf("failed to get dustbin: %w", err)
	}

	return mo.Some(dustbin), nil
}

// CreateDustbin inserts a new dustbin. Status defaults to 'active' at the
// database level; created_at and updated_at are both set to NOW().
func (r *PostgresDustbinsRepository) CreateDustbin(
	ctx context.Context,
	latitude, longitude decimal.Decimal,
	address, description, reportedBy *string,
) (*models.Dustbin, error) {
	returningStr := strings.Join(dustbinsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.dustbins (latitude, longitude, address, description, reported_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, r.schema, returningStr)

	dustbin := &models.Dustbin{}
	err := r.db.QueryRowxContext(ctx, query, latitude, longitude, address, description, reportedBy).
		StructScan(dustbin)
	if err != nil {
		return nil, fmt.Errorf("failed to create dustbin: %w", err)
	}

	return dustbin, nil
}

// UpdateDustbin applies a sparse patch: only fields present in the update
// are written, and updated_at is always refreshed. Returns None when no
// row with that id exists.
func (r *PostgresDustbinsRepository) UpdateDustbin(
	ctx context.Context,
	id int,
	update models.DustbinUpdate,
) (mo.Option[*models.Dustbin], error) {
	setClauses := []string{}
	args := []any{}

	addClause := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if latitude, ok := update.Latitude.Get(); ok {
		addClause("latitude", latitude)
	}
	if longitude, ok := update.Longitude.Get(); ok {
		addClause("longitude", longitude)
	}
	if address, ok := update.Address.Get(); ok {
		addClause("address", address)
	}
	if description, ok := update.Description.Get(); ok {
		addClause("description", description)
	}
	if status, ok := update.Status.Get(); ok {
		addClause("status", status)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	returningStr := strings.Join(dustbinsColumns, ", ")
	query := fmt.Sprintf(`
		UPDATE %s.dustbins
		SET %s
		WHERE id = $%d
		RETURNING %s`, r.schema, strings.Join(setClauses, ", "), len(args), returningStr)

	dustbin := &models.Dustbin{}
	err := r.db.QueryRowxContext(ctx, query, args...).StructScan(dustbin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Dustbin](), nil
		}
		return mo.None[*models.Dustbin](), fmt.Errorf("failed to update dustbin: %w", err)
	}

	return mo.Some(dustbin), nil
}

// DeleteDustbin hard-deletes a dustbin. Returns false when no row with
// that id exists.
func (r *PostgresDustbinsRepository) DeleteDustbin(ctx context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s.dustbins
		WHERE id = $1
		RETURNING id`, r.schema)

	var deletedID int
	err := r.db.QueryRowxContext(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete dustbin: %w", err)
	}

	return true, nil
}
