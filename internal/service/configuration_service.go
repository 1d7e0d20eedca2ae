package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"retailvision/internal/filter"
	"retailvision/internal/model"
	"retailvision/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// lastModifiedLayout is the date format used for CategoryFlow.LastModified.
const lastModifiedLayout = "2006-01-02"

var questionTypes = []string{model.QuestionText, model.QuestionMultipleChoice, model.QuestionBoolean}

// configurationService implements ConfigurationService.
type configurationService struct {
	flows  repository.FlowRepository
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewConfigurationService creates a new configuration service.
func NewConfigurationService(flows repository.FlowRepository, logger zerolog.Logger) ConfigurationService {
	return &configurationService{
		flows:  flows,
		logger: logger.With().Str("service", "configuration").Logger(),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

func (s *configurationService) List(ctx context.Context, q filter.Query) ([]model.CategoryFlow, error) {
	flows, err := s.flows.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list flows")
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	return filter.Apply(flows, q,
		func(f model.CategoryFlow) []string { return []string{f.Name, f.Description} },
		func(f model.CategoryFlow) string { return f.Status },
	), nil
}

func (s *configurationService) Get(ctx context.Context, flowID string) (*model.CategoryFlow, error) {
	flow, err := s.flows.Get(ctx, flowID)
	if err != nil {
		s.logger.Error().Err(err).Str("flow_id", flowID).Msg("failed to get flow")
		return nil, fmt.Errorf("failed to get flow: %w", err)
	}

	if flow == nil {
		return nil, model.ErrFlowNotFound
	}

	return flow, nil
}

func (s *configurationService) Stats(ctx context.Context) (*model.FlowStats, error) {
	flows, err := s.flows.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list flows")
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	stats := &model.FlowStats{TotalFlows: len(flows)}
	for _, f := range flows {
		if f.Status == model.FlowActive {
			stats.ActiveFlows++
		}
		stats.TotalQuestions += len(f.Questions)
	}
	return stats, nil
}

// AddQuestion validates draft and appends it to the flow with a generated ID.
func (s *configurationService) AddQuestion(ctx context.Context, flowID string, draft model.QuestionDraft) (*model.CategoryFlow, error) {
	q := model.Question{
		Text:     strings.TrimSpace(draft.Text),
		Type:     draft.Type,
		Options:  cleanOptions(draft.Options),
		Required: draft.Required,
	}
	if q.Type == "" {
		q.Type = model.QuestionText
	}
	if err := checkQuestion(q); err != nil {
		return nil, err
	}
	q.ID = s.newID()

	flow, err := s.flows.Update(ctx, flowID, func(f *model.CategoryFlow) error {
		f.Questions = append(f.Questions, q)
		return nil
	})
	if err != nil {
		return nil, s.flowError(err, flowID, "failed to add question")
	}

	s.logger.Info().
		Str("flow_id", flowID).
		Str("question_id", q.ID).
		Msg("question added")

	return flow, nil
}

// UpdateQuestion merges the non-nil fields of patch into the question.
func (s *configurationService) UpdateQuestion(ctx context.Context, flowID, questionID string, patch model.QuestionPatch) (*model.CategoryFlow, error) {
	flow, err := s.flows.Update(ctx, flowID, func(f *model.CategoryFlow) error {
		i := slices.IndexFunc(f.Questions, func(q model.Question) bool { return q.ID == questionID })
		if i < 0 {
			return model.ErrQuestionNotFound
		}

		q := f.Questions[i]
		if patch.Text != nil {
			q.Text = strings.TrimSpace(*patch.Text)
		}
		if patch.Type != nil {
			q.Type = *patch.Type
		}
		if patch.Options != nil {
			q.Options = cleanOptions(*patch.Options)
		}
		if patch.Required != nil {
			q.Required = *patch.Required
		}
		if err := checkQuestion(q); err != nil {
			return err
		}

		f.Questions[i] = q
		return nil
	})
	if err != nil {
		return nil, s.flowError(err, flowID, "failed to update question")
	}

	s.logger.Info().
		Str("flow_id", flowID).
		Str("question_id", questionID).
		Msg("question updated")

	return flow, nil
}

func (s *configurationService) DeleteQuestion(ctx context.Context, flowID, questionID string) (*model.CategoryFlow, error) {
	flow, err := s.flows.Update(ctx, flowID, func(f *model.CategoryFlow) error {
		i := slices.IndexFunc(f.Questions, func(q model.Question) bool { return q.ID == questionID })
		if i < 0 {
			return model.ErrQuestionNotFound
		}
		f.Questions = slices.Delete(f.Questions, i, i+1)
		return nil
	})
	if err != nil {
		return nil, s.flowError(err, flowID, "failed to delete question")
	}

	s.logger.Info().
		Str("flow_id", flowID).
		Str("question_id", questionID).
		Msg("question deleted")

	return flow, nil
}

// SaveFlow bumps the flow version and stamps today's date.
func (s *configurationService) SaveFlow(ctx context.Context, flowID string) (*model.CategoryFlow, error) {
	today := s.now().Format(lastModifiedLayout)

	flow, err := s.flows.Update(ctx, flowID, func(f *model.CategoryFlow) error {
		f.Version++
		f.LastModified = today
		return nil
	})
	if err != nil {
		return nil, s.flowError(err, flowID, "failed to save flow")
	}

	s.logger.Info().
		Str("flow_id", flowID).
		Int("version", flow.Version).
		Msg("flow saved")

	return flow, nil
}

// flowError passes domain errors through and wraps everything else.
func (s *configurationService) flowError(err error, flowID, msg string) error {
	var de *model.DomainError
	if errors.As(err, &de) {
		return err
	}
	s.logger.Error().Err(err).Str("flow_id", flowID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func checkQuestion(q model.Question) error {
	if q.Text == "" {
		return model.ErrQuestionText
	}
	if !slices.Contains(questionTypes, q.Type) {
		return model.ErrQuestionType
	}
	return nil
}

// cleanOptions trims every option and drops blanks.
func cleanOptions(options []string) []string {
	var out []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
