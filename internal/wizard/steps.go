package wizard

import "retailvision/internal/model"

// Step indexes of the add-retailer wizard.
const (
	StepDetails = iota + 1
	StepConnector
	StepMapping
	StepStores
	StepReview
)

var steps = []model.WizardStep{
	{ID: StepDetails, Title: "Retailer Details", Description: "Basic information"},
	{ID: StepConnector, Title: "ERP/Connector Setup", Description: "Data source configuration"},
	{ID: StepMapping, Title: "Data Mapper", Description: "Field mapping"},
	{ID: StepStores, Title: "Store Linking", Description: "Associate stores"},
	{ID: StepReview, Title: "Review & Confirm", Description: "Final review"},
}

var connectors = []model.Connector{
	{ID: "sheets", Name: "Google Sheets", Description: "Connect to Google Sheets"},
	{ID: "bigquery", Name: "BigQuery", Description: "Google BigQuery integration"},
	{ID: "aws", Name: "AWS", Description: "Amazon Web Services"},
	{ID: "firebase", Name: "Firebase", Description: "Firebase Realtime Database"},
}

var (
	cmsFields       = []string{"Product Name", "Price", "Category", "Brand", "SKU", "Description"}
	sourceColumns   = []string{"product_name", "price", "category", "brand", "sku", "description"}
	availableStores = []string{"TechMart Downtown", "TechMart Mall", "TechMart Express", "TechMart Outlet"}
)

// StepCount is the number of wizard steps.
func StepCount() int {
	return len(steps)
}

// StepInfo returns the metadata of step n, clamped to the valid range.
func StepInfo(n int) model.WizardStep {
	n = clampStep(n)
	return steps[n-1]
}

// Catalog returns the fixed choices offered by the wizard.
func Catalog() model.WizardCatalog {
	return model.WizardCatalog{
		Steps:         append([]model.WizardStep(nil), steps...),
		Connectors:    append([]model.Connector(nil), connectors...),
		CMSFields:     append([]string(nil), cmsFields...),
		SourceColumns: append([]string(nil), sourceColumns...),
		Stores:        append([]string(nil), availableStores...),
	}
}

func clampStep(n int) int {
	if n < StepDetails {
		return StepDetails
	}
	if n > len(steps) {
		return len(steps)
	}
	return n
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func knownConnector(id string) bool {
	for _, c := range connectors {
		if c.ID == id {
			return true
		}
	}
	return false
}
