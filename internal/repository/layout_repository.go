package repository

import (
	"context"
	"errors"
	"fmt"

	"retailvision/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// layoutRepository implements LayoutRepository using PostgreSQL.
type layoutRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewLayoutRepository creates a new PostgreSQL-backed layout repository.
func NewLayoutRepository(pool *pgxpool.Pool, logger zerolog.Logger) LayoutRepository {
	return &layoutRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "layout").Logger(),
	}
}

// Save inserts the layout header and its items in one transaction. The
// version is one past the store's current maximum; a concurrent save of the
// same store fails on the (store_id, version) unique constraint.
func (r *layoutRepository) Save(ctx context.Context, storeID string, items []model.LayoutItem) (*model.Layout, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	layoutID := uuid.New()
	layout := &model.Layout{
		StoreID: storeID,
		Items:   append([]model.LayoutItem{}, items...),
	}

	query := `
		INSERT INTO planogram_layouts (id, store_id, version, saved_at)
		SELECT $1::uuid, $2::varchar, COALESCE(MAX(version), 0) + 1, NOW()
		FROM planogram_layouts
		WHERE store_id = $2
		RETURNING version, saved_at
	`

	err = tx.QueryRow(ctx, query, layoutID, storeID).Scan(&layout.Version, &layout.SavedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("store_id", storeID).Msg("failed to insert layout")
		return nil, fmt.Errorf("failed to insert layout: %w", err)
	}

	if len(items) > 0 {
		itemQuery := `
			INSERT INTO planogram_layout_items (layout_id, zone_id, product_id)
			VALUES ($1, $2, $3)
		`

		batch := &pgx.Batch{}
		for _, item := range items {
			batch.Queue(itemQuery, layoutID, item.ZoneID, item.ProductID)
		}

		results := tx.SendBatch(ctx, batch)
		for range items {
			if _, err := results.Exec(); err != nil {
				results.Close()
				r.logger.Error().Err(err).Str("store_id", storeID).Msg("failed to insert layout item")
				return nil, fmt.Errorf("failed to insert layout item: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return nil, fmt.Errorf("failed to close batch results: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("store_id", storeID).Msg("failed to commit layout")
		return nil, fmt.Errorf("failed to commit layout: %w", err)
	}

	r.logger.Debug().
		Str("store_id", storeID).
		Int("version", layout.Version).
		Int("items", len(items)).
		Msg("layout saved")

	return layout, nil
}

// Latest returns the highest saved version, or nil if the store has none.
func (r *layoutRepository) Latest(ctx context.Context, storeID string) (*model.Layout, error) {
	query := `
		SELECT id, store_id, version, saved_at
		FROM planogram_layouts
		WHERE store_id = $1
		ORDER BY version DESC
		LIMIT 1
	`

	var layoutID uuid.UUID
	var layout model.Layout
	err := r.pool.QueryRow(ctx, query, storeID).Scan(&layoutID, &layout.StoreID, &layout.Version, &layout.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("store_id", storeID).Msg("no saved layout")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("store_id", storeID).Msg("failed to query layout")
		return nil, fmt.Errorf("failed to query layout: %w", err)
	}

	itemsQuery := `
		SELECT zone_id, product_id
		FROM planogram_layout_items
		WHERE layout_id = $1
		ORDER BY zone_id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, layoutID)
	if err != nil {
		r.logger.Error().Err(err).Str("layout_id", layoutID.String()).Msg("failed to query layout items")
		return nil, fmt.Errorf("failed to query layout items: %w", err)
	}
	defer rows.Close()

	layout.Items = []model.LayoutItem{}
	for rows.Next() {
		var item model.LayoutItem
		if err := rows.Scan(&item.ZoneID, &item.ProductID); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan layout item row")
			return nil, fmt.Errorf("failed to scan layout item: %w", err)
		}
		layout.Items = append(layout.Items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating layout item rows")
		return nil, fmt.Errorf("error iterating layout items: %w", err)
	}

	return &layout, nil
}
