package model

import "github.com/google/uuid"

// WizardFormState accumulates the answers of the add-retailer wizard.
type WizardFormState struct {
	RetailerName      string            `json:"retailerName" validate:"required"`
	AdminEmail        string            `json:"adminEmail" validate:"required,email"`
	Metadata          string            `json:"metadata"`
	SelectedConnector string            `json:"selectedConnector" validate:"required"`
	APIKey            string            `json:"apiKey" validate:"required_with=SelectedConnector"`
	Mappings          map[string]string `json:"mappings" validate:"min=1"`
	SelectedStores    []string          `json:"selectedStores" validate:"min=1"`
}

// WizardStep describes one step of the wizard.
type WizardStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Connector is an external data-source type offered by the wizard.
type Connector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WizardIssue is an advisory finding about an incomplete form field.
type WizardIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WizardSession is the API view of a wizard session.
type WizardSession struct {
	ID         uuid.UUID       `json:"id"`
	Step       int             `json:"step"`
	StepInfo   WizardStep      `json:"stepInfo"`
	Progress   float64         `json:"progress"`
	CanAdvance bool            `json:"canAdvance"`
	CanRetreat bool            `json:"canRetreat"`
	Form       WizardFormState `json:"form"`
	Issues     []WizardIssue   `json:"issues"`
}

// WizardCatalog lists the fixed choices offered by the wizard.
type WizardCatalog struct {
	Steps         []WizardStep `json:"steps"`
	Connectors    []Connector  `json:"connectors"`
	CMSFields     []string     `json:"cmsFields"`
	SourceColumns []string     `json:"sourceColumns"`
	Stores        []string     `json:"stores"`
}

// WizardDetailsRequest is the payload for the details step.
type WizardDetailsRequest struct {
	RetailerName string `json:"retailerName"`
	AdminEmail   string `json:"adminEmail"`
	Metadata     string `json:"metadata"`
}

// WizardConnectorRequest selects a connector.
type WizardConnectorRequest struct {
	ConnectorID string `json:"connectorId"`
}

// WizardAPIKeyRequest sets the connector API key.
type WizardAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// WizardMappingRequest maps a CMS field to a source column.
type WizardMappingRequest struct {
	Field  string `json:"field"`
	Column string `json:"column"`
}

// WizardStoreRequest links or unlinks a store.
type WizardStoreRequest struct {
	Store    string `json:"store"`
	Selected bool   `json:"selected"`
}
