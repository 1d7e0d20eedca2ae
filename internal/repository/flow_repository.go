package repository

import (
	"context"
	"sync"

	"retailvision/internal/model"

	"github.com/rs/zerolog"
)

// flowRepository implements FlowRepository in memory.
type flowRepository struct {
	mu     sync.RWMutex
	flows  []model.CategoryFlow
	logger zerolog.Logger
}

// NewFlowRepository creates a flow repository seeded with copies of flows.
func NewFlowRepository(flows []model.CategoryFlow, logger zerolog.Logger) FlowRepository {
	seeded := make([]model.CategoryFlow, len(flows))
	for i, f := range flows {
		seeded[i] = copyFlow(f)
	}
	return &flowRepository{
		flows:  seeded,
		logger: logger.With().Str("repository", "flow").Logger(),
	}
}

func copyFlow(f model.CategoryFlow) model.CategoryFlow {
	out := f
	out.Questions = make([]model.Question, len(f.Questions))
	for i, q := range f.Questions {
		out.Questions[i] = q
		if q.Options != nil {
			out.Questions[i].Options = append([]string{}, q.Options...)
		}
	}
	return out
}

func (r *flowRepository) List(ctx context.Context) ([]model.CategoryFlow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.CategoryFlow, len(r.flows))
	for i, f := range r.flows {
		out[i] = copyFlow(f)
	}
	return out, nil
}

func (r *flowRepository) Get(ctx context.Context, id string) (*model.CategoryFlow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.flows {
		if f.ID == id {
			flow := copyFlow(f)
			return &flow, nil
		}
	}
	return nil, nil
}

func (r *flowRepository) Update(ctx context.Context, id string, fn func(*model.CategoryFlow) error) (*model.CategoryFlow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.flows {
		if f.ID != id {
			continue
		}

		working := copyFlow(f)
		if err := fn(&working); err != nil {
			return nil, err
		}
		r.flows[i] = working

		r.logger.Debug().
			Str("flow_id", id).
			Int("version", working.Version).
			Int("questions", len(working.Questions)).
			Msg("flow updated")

		out := copyFlow(working)
		return &out, nil
	}

	return nil, model.ErrFlowNotFound
}
