package model

// Flow status values.
const (
	FlowActive   = "active"
	FlowDraft    = "draft"
	FlowArchived = "archived"
)

// Question types.
const (
	QuestionText           = "text"
	QuestionMultipleChoice = "multiple_choice"
	QuestionBoolean        = "boolean"
)

// CategoryFlow is an ordered questionnaire attached to a product category.
type CategoryFlow struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Version      int        `json:"version" yaml:"version"`
	LastModified string     `json:"lastModified" yaml:"lastModified"`
	Status       string     `json:"status" yaml:"status"`
	Questions    []Question `json:"questions" yaml:"questions"`
}

// Question is a single entry of a category flow.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Type     string   `json:"type" yaml:"type"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Required bool     `json:"required" yaml:"required"`
}

// QuestionDraft is the payload for adding a question to a flow.
type QuestionDraft struct {
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

// QuestionPatch holds a partial question update; nil fields are left unchanged.
type QuestionPatch struct {
	Text     *string   `json:"text,omitempty"`
	Type     *string   `json:"type,omitempty"`
	Options  *[]string `json:"options,omitempty"`
	Required *bool     `json:"required,omitempty"`
}

// FlowStats summarises the configuration screen.
type FlowStats struct {
	TotalFlows     int `json:"totalFlows"`
	ActiveFlows    int `json:"activeFlows"`
	TotalQuestions int `json:"totalQuestions"`
}
