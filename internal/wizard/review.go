package wizard

import (
	"errors"

	"retailvision/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var issueFields = map[string]string{
	"RetailerName":      "retailerName",
	"AdminEmail":        "adminEmail",
	"SelectedConnector": "selectedConnector",
	"APIKey":            "apiKey",
	"Mappings":          "mappings",
	"SelectedStores":    "selectedStores",
}

// Review lists the incomplete parts of the form. The result is advisory:
// transitions never consult it.
func Review(s State) []model.WizardIssue {
	issues := []model.WizardIssue{}

	err := validate.Struct(s.Form)
	if err == nil {
		return issues
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return append(issues, model.WizardIssue{Field: "_", Message: err.Error()})
	}

	for _, fe := range ve {
		field, ok := issueFields[fe.StructField()]
		if !ok {
			field = fe.StructField()
		}
		issues = append(issues, model.WizardIssue{
			Field:   field,
			Message: messageForTag(fe.Tag()),
		})
	}
	return issues
}

func messageForTag(tag string) string {
	switch tag {
	case "required", "required_with":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "select at least one entry"
	default:
		return "invalid value"
	}
}
