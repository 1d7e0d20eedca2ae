package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"retailvision/internal/filter"
	"retailvision/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConfigurationHandler_List(t *testing.T) {
	svc := new(MockConfigurationService)
	svc.On("List", mock.Anything, filter.Query{Search: "cloth", Category: "active"}).
		Return([]model.CategoryFlow{{ID: "clothing"}}, nil)

	h := NewConfigurationHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/configurations?search=cloth&status=active", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestConfigurationHandler_Stats(t *testing.T) {
	svc := new(MockConfigurationService)
	svc.On("Stats", mock.Anything).Return(&model.FlowStats{TotalFlows: 3, ActiveFlows: 2, TotalQuestions: 8}, nil)

	h := NewConfigurationHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/configurations/stats", nil)
	w := httptest.NewRecorder()

	h.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalFlows":3,"activeFlows":2,"totalQuestions":8}`, w.Body.String())
}

func TestConfigurationHandler_AddQuestion(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockConfigurationService)
		expectedStatus int
	}{
		{
			name: "Created",
			body: `{"text":"Colour?","type":"text"}`,
			setupMock: func(m *MockConfigurationService) {
				m.On("AddQuestion", mock.Anything, "electronics", model.QuestionDraft{Text: "Colour?", Type: "text"}).
					Return(&model.CategoryFlow{ID: "electronics"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed JSON",
			body:           `{"text":`,
			setupMock:      func(*MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Validation error",
			body: `{"text":""}`,
			setupMock: func(m *MockConfigurationService) {
				m.On("AddQuestion", mock.Anything, "electronics", model.QuestionDraft{}).
					Return(nil, model.ErrQuestionText)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown flow",
			body: `{"text":"Colour?"}`,
			setupMock: func(m *MockConfigurationService) {
				m.On("AddQuestion", mock.Anything, "electronics", model.QuestionDraft{Text: "Colour?"}).
					Return(nil, model.ErrFlowNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockConfigurationService)
			tt.setupMock(svc)

			h := NewConfigurationHandler(svc, zerolog.Nop())
			req := httptest.NewRequest(http.MethodPost, "/api/configurations/electronics/questions", strings.NewReader(tt.body))
			req.SetPathValue("flowId", "electronics")
			w := httptest.NewRecorder()

			h.AddQuestion(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestConfigurationHandler_UpdateQuestion(t *testing.T) {
	svc := new(MockConfigurationService)
	svc.On("UpdateQuestion", mock.Anything, "clothing", "care", mock.MatchedBy(func(p model.QuestionPatch) bool {
		return p.Required != nil && *p.Required && p.Text == nil
	})).Return(&model.CategoryFlow{ID: "clothing"}, nil)

	h := NewConfigurationHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodPatch, "/api/configurations/clothing/questions/care", strings.NewReader(`{"required":true}`))
	req.SetPathValue("flowId", "clothing")
	req.SetPathValue("questionId", "care")
	w := httptest.NewRecorder()

	h.UpdateQuestion(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestConfigurationHandler_DeleteQuestion(t *testing.T) {
	svc := new(MockConfigurationService)
	svc.On("DeleteQuestion", mock.Anything, "clothing", "nope").Return(nil, model.ErrQuestionNotFound)

	h := NewConfigurationHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodDelete, "/api/configurations/clothing/questions/nope", nil)
	req.SetPathValue("flowId", "clothing")
	req.SetPathValue("questionId", "nope")
	w := httptest.NewRecorder()

	h.DeleteQuestion(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrCodeQuestionNotFound)
}

func TestConfigurationHandler_Save(t *testing.T) {
	tests := []struct {
		name           string
		mockReturn     *model.CategoryFlow
		mockError      error
		expectedStatus int
	}{
		{"Saved", &model.CategoryFlow{ID: "footwear", Version: 2}, nil, http.StatusOK},
		{"Not found", nil, model.ErrFlowNotFound, http.StatusNotFound},
		{"Internal error", nil, errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockConfigurationService)
			if tt.mockError != nil {
				svc.On("SaveFlow", mock.Anything, "footwear").Return(nil, tt.mockError)
			} else {
				svc.On("SaveFlow", mock.Anything, "footwear").Return(tt.mockReturn, nil)
			}

			h := NewConfigurationHandler(svc, zerolog.Nop())
			req := httptest.NewRequest(http.MethodPost, "/api/configurations/footwear/save", nil)
			req.SetPathValue("flowId", "footwear")
			w := httptest.NewRecorder()

			h.Save(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotContains(t, w.Body.String(), "disk full")
		})
	}
}
