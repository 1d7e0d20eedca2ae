package service

import (
	"context"
	"errors"
	"fmt"

	"retailvision/internal/model"
	"retailvision/internal/repository"
	"retailvision/internal/wizard"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// wizardService implements WizardService. Every operation loads the session,
// applies one pure transition and stores the result.
type wizardService struct {
	sessions repository.WizardRepository
	logger   zerolog.Logger
}

// NewWizardService creates a new wizard service.
func NewWizardService(sessions repository.WizardRepository, logger zerolog.Logger) WizardService {
	return &wizardService{
		sessions: sessions,
		logger:   logger.With().Str("service", "wizard").Logger(),
	}
}

func (s *wizardService) Catalog() model.WizardCatalog {
	return wizard.Catalog()
}

func (s *wizardService) Start(ctx context.Context) (*model.WizardSession, error) {
	id := uuid.New()
	state := wizard.New()

	if err := s.sessions.Create(ctx, id, state); err != nil {
		s.logger.Error().Err(err).Msg("failed to create wizard session")
		return nil, fmt.Errorf("failed to create wizard session: %w", err)
	}

	s.logger.Info().Str("session_id", id.String()).Msg("wizard session started")
	return toSession(id, state), nil
}

func (s *wizardService) Get(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	state, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, s.sessionError(err, id, "failed to get wizard session")
	}
	return toSession(id, state), nil
}

func (s *wizardService) Advance(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return s.apply(ctx, id, "advance", func(st wizard.State) (wizard.State, error) {
		return wizard.Advance(st), nil
	})
}

func (s *wizardService) Retreat(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return s.apply(ctx, id, "retreat", func(st wizard.State) (wizard.State, error) {
		return wizard.Retreat(st), nil
	})
}

// Finish resets the session to the first step with an empty form.
func (s *wizardService) Finish(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return s.apply(ctx, id, "finish", func(st wizard.State) (wizard.State, error) {
		return wizard.Finish(st), nil
	})
}

func (s *wizardService) SetDetails(ctx context.Context, id uuid.UUID, req model.WizardDetailsRequest) (*model.WizardSession, error) {
	return s.apply(ctx, id, "details", func(st wizard.State) (wizard.State, error) {
		return wizard.SetDetails(st, req.RetailerName, req.AdminEmail, req.Metadata), nil
	})
}

func (s *wizardService) SelectConnector(ctx context.Context, id uuid.UUID, connectorID string) (*model.WizardSession, error) {
	return s.apply(ctx, id, "connector", func(st wizard.State) (wizard.State, error) {
		return wizard.SelectConnector(st, connectorID)
	})
}

func (s *wizardService) SetAPIKey(ctx context.Context, id uuid.UUID, key string) (*model.WizardSession, error) {
	return s.apply(ctx, id, "api_key", func(st wizard.State) (wizard.State, error) {
		return wizard.SetAPIKey(st, key), nil
	})
}

func (s *wizardService) MapField(ctx context.Context, id uuid.UUID, field, column string) (*model.WizardSession, error) {
	return s.apply(ctx, id, "mapping", func(st wizard.State) (wizard.State, error) {
		return wizard.MapField(st, field, column)
	})
}

func (s *wizardService) ToggleStore(ctx context.Context, id uuid.UUID, store string, selected bool) (*model.WizardSession, error) {
	return s.apply(ctx, id, "store", func(st wizard.State) (wizard.State, error) {
		return wizard.ToggleStore(st, store, selected)
	})
}

// Close discards the session.
func (s *wizardService) Close(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return s.sessionError(err, id, "failed to close wizard session")
	}
	s.logger.Info().Str("session_id", id.String()).Msg("wizard session closed")
	return nil
}

func (s *wizardService) apply(ctx context.Context, id uuid.UUID, op string, fn func(wizard.State) (wizard.State, error)) (*model.WizardSession, error) {
	state, err := s.sessions.Update(ctx, id, fn)
	if err != nil {
		return nil, s.sessionError(err, id, "failed to update wizard session")
	}

	s.logger.Debug().
		Str("session_id", id.String()).
		Str("op", op).
		Int("step", state.Step).
		Msg("wizard transition applied")

	return toSession(id, state), nil
}

func (s *wizardService) sessionError(err error, id uuid.UUID, msg string) error {
	var de *model.DomainError
	if errors.As(err, &de) {
		return err
	}
	s.logger.Error().Err(err).Str("session_id", id.String()).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func toSession(id uuid.UUID, state wizard.State) *model.WizardSession {
	return &model.WizardSession{
		ID:         id,
		Step:       state.Step,
		StepInfo:   wizard.StepInfo(state.Step),
		Progress:   wizard.Progress(state),
		CanAdvance: wizard.CanAdvance(state),
		CanRetreat: wizard.CanRetreat(state),
		Form:       state.Form,
		Issues:     wizard.Review(state),
	}
}
