// Package postgres owns the database connection and schema bootstrap for
// the analysis store.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	table_id TEXT NOT NULL,
	table_name TEXT NOT NULL,
	table_fingerprint TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	calculator TEXT NOT NULL,
	object_count INTEGER NOT NULL,
	quality_of_classification DOUBLE PRECISION NOT NULL,
	payload JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_table_id ON analyses (table_id);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
`

// Connect opens and pings a database connection
func Connect(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the analyses table and indexes if they do not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
