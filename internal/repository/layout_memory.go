package repository

import (
	"context"
	"sync"
	"time"

	"retailvision/internal/model"

	"github.com/rs/zerolog"
)

// memoryLayoutRepository implements LayoutRepository in memory. It is used
// when no database is configured; saved layouts are lost on restart.
type memoryLayoutRepository struct {
	mu      sync.RWMutex
	layouts map[string][]model.Layout
	now     func() time.Time
	logger  zerolog.Logger
}

// NewMemoryLayoutRepository creates an in-memory layout repository.
func NewMemoryLayoutRepository(logger zerolog.Logger) LayoutRepository {
	return &memoryLayoutRepository{
		layouts: make(map[string][]model.Layout),
		now:     time.Now,
		logger:  logger.With().Str("repository", "layout-memory").Logger(),
	}
}

func (r *memoryLayoutRepository) Save(ctx context.Context, storeID string, items []model.LayoutItem) (*model.Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.layouts[storeID]
	layout := model.Layout{
		StoreID: storeID,
		Version: len(history) + 1,
		SavedAt: r.now().UTC(),
		Items:   append([]model.LayoutItem{}, items...),
	}
	r.layouts[storeID] = append(history, layout)

	r.logger.Debug().
		Str("store_id", storeID).
		Int("version", layout.Version).
		Int("items", len(items)).
		Msg("layout saved")

	out := layout
	out.Items = append([]model.LayoutItem{}, layout.Items...)
	return &out, nil
}

func (r *memoryLayoutRepository) Latest(ctx context.Context, storeID string) (*model.Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.layouts[storeID]
	if len(history) == 0 {
		return nil, nil
	}

	out := history[len(history)-1]
	out.Items = append([]model.LayoutItem{}, out.Items...)
	return &out, nil
}
