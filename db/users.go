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

	"dustbinbackend/models"
)

type PostgresUsersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for users table
var usersColumns = []string{
	"id",
	"google_id",
	"email",
	"name",
	"picture",
	"created_at",
	"updated_at",
}

func NewPostgresUsersRepository(db *sqlx.DB, schema string) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db, schema: schema}
}

func (r *PostgresUsersRepository) GetUserByGoogleID(
	ctx context.Context,
	googleID string,
) (mo.Option[*models.User], error) {
	columnsStr := strings.Join(usersColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.users
		WHERE google_id = $1`, columnsStr, r.schema)

	user := &models.User{}
	err := r.db.QueryRowxContext(ctx, query, googleID).StructScan(user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.User](), nil
		}
		return mo.None[*models.User](), fmt.Errorf("failed to get user by google ID: %w", err)
	}

	return mo.Some(user), nil
}

func (r *PostgresUsersRepository) GetUserByID(
	ctx context.Context,
	id int,
) (mo.Option[*models.User], error) {
	columnsStr := strings.Join(usersColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.users
		WHERE id = $1`, columnsStr, r.schema)

	user := &models.User{}
	err := r.db.QueryRowxContext(ctx, query, id).StructScan(user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.User](), nil
		}
		return mo.None[*models.User](), fmt.Errorf("failed to get user by ID: %w", err)
	}

	return mo.Some(user), nil
}

func (r *PostgresUsersRepository) CreateUser(
	ctx context.Context,
	googleID, email, name string,
	picture *string,
) (*models.User, error) {
	returningStr := strings.Join(usersColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.users (google_id, email, name, picture)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, r.schema, returningStr)

	user := &models.User{}
	err := r.db.QueryRowxContext(ctx, query, googleID, email, name, picture).StructScan(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUserProfile refreshes the display fields that Google may have
// changed since the last sign-in.
func (r *PostgresUsersRepository) UpdateUserProfile(
	ctx context.Context,
	id int,
	name string,
	picture *string,
) (*models.User, error) {
	returningStr := strings.Join(usersColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.users
		SET name = $1, picture = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING %s`, r.schema, returningStr)

	user := &models.User{}
	err := r.db.QueryRowxContext(ctx, query, name, picture, id).StructScan(user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	return user, nil
}
