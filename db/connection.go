package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"
)

const (
	// maxPoolSize bounds the number of concurrent database connections.
	maxPoolSize = 20
	// idleTimeout closes connections that sat unused for this long.
	idleTimeout = 30 * time.Second
)

// NewConnection opens a bounded connection pool against the given Postgres
// URL. The pool is not probed here: the server starts even when the
// database is unreachable and the health endpoint reports the degradation.
func NewConnection(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxPoolSize)
	db.SetMaxIdleConns(maxPoolSize)
	db.SetConnMaxIdleTime(idleTimeout)

	return db, nil
}

// TestConnection probes the database and logs the outcome. Returns false
// when the database is unreachable.
func TestConnection(ctx context.Context, db *sqlx.DB) bool {
	var now time.Time
	if err := db.QueryRowxContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		log.Printf("❌ Database connection failed: %v", err)
		return false
	}

	log.Printf("✅ Database connected successfully at: %s", now)
	return true
}
