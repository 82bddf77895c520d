package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the items table and its indexes if they do not exist.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			sequence_id BIGINT GENERATED ALWAYS AS IDENTITY,
			name        TEXT NOT NULL,
			unit        TEXT NOT NULL,
			stock       DOUBLE PRECISION NOT NULL,
			rack        TEXT,
			location    TEXT,
			is_deleted  BOOLEAN NOT NULL DEFAULT FALSE,
			created_at  TIMESTAMP NOT NULL DEFAULT now(),
			updated_at  TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_items_is_deleted ON items (is_deleted);
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
