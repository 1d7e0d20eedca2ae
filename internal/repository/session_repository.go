package repository

import (
	"context"
	"fmt"
	"sync"

	"retailvision/internal/model"
	"retailvision/internal/planogram"
	"retailvision/internal/wizard"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// wizardRepository implements WizardRepository in memory. States are values
// produced by pure transitions, so they are stored without copying.
type wizardRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]wizard.State
	logger   zerolog.Logger
}

// NewWizardRepository creates an empty wizard session store.
func NewWizardRepository(logger zerolog.Logger) WizardRepository {
	return &wizardRepository{
		sessions: make(map[uuid.UUID]wizard.State),
		logger:   logger.With().Str("repository", "wizard").Logger(),
	}
}

func (r *wizardRepository) Create(ctx context.Context, id uuid.UUID, state wizard.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return fmt.Errorf("wizard session %s already exists", id)
	}
	r.sessions[id] = state
	return nil
}

func (r *wizardRepository) Get(ctx context.Context, id uuid.UUID) (wizard.State, error) {
	if err := ctx.Err(); err != nil {
		return wizard.State{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return wizard.State{}, model.ErrSessionNotFound
	}
	return s, nil
}

func (r *wizardRepository) Update(ctx context.Context, id uuid.UUID, fn func(wizard.State) (wizard.State, error)) (wizard.State, error) {
	if err := ctx.Err(); err != nil {
		return wizard.State{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[id]
	if !ok {
		return wizard.State{}, model.ErrSessionNotFound
	}

	next, err := fn(current)
	if err != nil {
		return wizard.State{}, err
	}
	r.sessions[id] = next
	return next, nil
}

func (r *wizardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, id)
	r.logger.Debug().Str("session_id", id.String()).Msg("wizard session discarded")
	return nil
}

// boardRepository implements BoardRepository in memory.
type boardRepository struct {
	mu     sync.RWMutex
	boards map[string]planogram.Board
}

// NewBoardRepository creates an empty board store.
func NewBoardRepository() BoardRepository {
	return &boardRepository{boards: make(map[string]planogram.Board)}
}

func (r *boardRepository) Get(ctx context.Context, storeID string) (planogram.Board, error) {
	if err := ctx.Err(); err != nil {
		return planogram.Board{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.boards[storeID]; ok {
		return b, nil
	}
	return planogram.NewBoard(), nil
}

func (r *boardRepository) Update(ctx context.Context, storeID string, fn func(planogram.Board) (planogram.Board, error)) (planogram.Board, error) {
	if err := ctx.Err(); err != nil {
		return planogram.Board{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.boards[storeID]
	if !ok {
		current = planogram.NewBoard()
	}

	next, err := fn(current)
	if err != nil {
		return planogram.Board{}, err
	}
	r.boards[storeID] = next
	return next, nil
}
