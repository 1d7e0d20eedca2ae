package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for saved planogram layouts. It is idempotent.
const Schema = `
	CREATE TABLE IF NOT EXISTS planogram_layouts (
		id UUID PRIMARY KEY,
		store_id VARCHAR(50) NOT NULL,
		version INTEGER NOT NULL CHECK (version > 0),
		saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (store_id, version)
	);

	CREATE TABLE IF NOT EXISTS planogram_layout_items (
		layout_id UUID NOT NULL REFERENCES planogram_layouts(id) ON DELETE CASCADE,
		zone_id VARCHAR(10) NOT NULL,
		product_id INTEGER NOT NULL,
		PRIMARY KEY (layout_id, zone_id)
	);

	CREATE INDEX IF NOT EXISTS idx_planogram_layouts_store ON planogram_layouts(store_id, version DESC);
`

// Migrate creates the layout tables if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema is up to date")
	return nil
}
