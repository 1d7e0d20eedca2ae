// Package wizard implements the add-retailer wizard as pure transitions over
// an immutable State. No transition mutates its argument.
package wizard

import (
	"slices"

	"retailvision/internal/model"
)

// State is the wizard position plus the accumulated form.
type State struct {
	Step int
	Form model.WizardFormState
}

// New returns the initial state: step 1 with an empty form.
func New() State {
	return State{
		Step: StepDetails,
		Form: emptyForm(),
	}
}

func emptyForm() model.WizardFormState {
	return model.WizardFormState{
		Mappings:       map[string]string{},
		SelectedStores: []string{},
	}
}

// clone deep-copies s so callers can modify the result freely.
func (s State) clone() State {
	out := s
	out.Form.Mappings = make(map[string]string, len(s.Form.Mappings))
	for k, v := range s.Form.Mappings {
		out.Form.Mappings[k] = v
	}
	out.Form.SelectedStores = append([]string{}, s.Form.SelectedStores...)
	return out
}

// CanAdvance reports whether Advance would move the wizard.
func CanAdvance(s State) bool {
	return s.Step < StepCount()
}

// CanRetreat reports whether Retreat would move the wizard.
func CanRetreat(s State) bool {
	return s.Step > StepDetails
}

// Advance moves one step forward. It is a no-op on the last step.
// Required fields are not checked.
func Advance(s State) State {
	out := s.clone()
	if CanAdvance(s) {
		out.Step++
	}
	return out
}

// Retreat moves one step back. It is a no-op on the first step.
func Retreat(s State) State {
	out := s.clone()
	if CanRetreat(s) {
		out.Step--
	}
	return out
}

// Finish discards the accumulated form and returns to the first step.
func Finish(State) State {
	return New()
}

// Progress returns the completion percentage shown by the progress bar.
func Progress(s State) float64 {
	return float64(s.Step) / float64(StepCount()) * 100
}

// SetDetails records the retailer details.
func SetDetails(s State, name, email, metadata string) State {
	out := s.clone()
	out.Form.RetailerName = name
	out.Form.AdminEmail = email
	out.Form.Metadata = metadata
	return out
}

// SelectConnector records the chosen data connector.
func SelectConnector(s State, connectorID string) (State, error) {
	if !knownConnector(connectorID) {
		return s, model.ErrUnknownConnector
	}
	out := s.clone()
	out.Form.SelectedConnector = connectorID
	return out, nil
}

// SetAPIKey records the connector credential.
func SetAPIKey(s State, key string) State {
	out := s.clone()
	out.Form.APIKey = key
	return out
}

// MapField maps a CMS field to a source column. An empty column clears the
// mapping for that field.
func MapField(s State, field, column string) (State, error) {
	if !contains(cmsFields, field) {
		return s, model.ErrUnknownField
	}
	if column != "" && !contains(sourceColumns, column) {
		return s, model.ErrUnknownField
	}
	out := s.clone()
	if column == "" {
		delete(out.Form.Mappings, field)
	} else {
		out.Form.Mappings[field] = column
	}
	return out, nil
}

// ToggleStore links or unlinks a store. Linking an already linked store and
// unlinking an absent one are no-ops.
func ToggleStore(s State, store string, selected bool) (State, error) {
	if !contains(availableStores, store) {
		return s, model.ErrUnknownStore
	}
	out := s.clone()
	idx := slices.Index(out.Form.SelectedStores, store)
	switch {
	case selected && idx < 0:
		out.Form.SelectedStores = append(out.Form.SelectedStores, store)
	case !selected && idx >= 0:
		out.Form.SelectedStores = slices.Delete(out.Form.SelectedStores, idx, idx+1)
	}
	return out, nil
}
