package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeStoreNotFound    = "STORE_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeFlowNotFound     = "FLOW_NOT_FOUND"
	ErrCodeQuestionNotFound = "QUESTION_NOT_FOUND"
	ErrCodeZoneNotFound     = "ZONE_NOT_FOUND"
	ErrCodeSessionNotFound  = "SESSION_NOT_FOUND"
	ErrCodeLayoutNotFound   = "LAYOUT_NOT_FOUND"
	ErrCodeUnknownConnector = "UNKNOWN_CONNECTOR"
	ErrCodeUnknownField     = "UNKNOWN_FIELD"
	ErrCodeUnknownStore     = "UNKNOWN_STORE"
	ErrCodeInvalidQuestion  = "INVALID_QUESTION"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// IsNotFound reports whether err is a domain error for a missing entity.
func IsNotFound(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	switch de.Code {
	case ErrCodeStoreNotFound, ErrCodeProductNotFound, ErrCodeFlowNotFound,
		ErrCodeQuestionNotFound, ErrCodeZoneNotFound,
		ErrCodeSessionNotFound, ErrCodeLayoutNotFound:
		return true
	}
	return false
}

// Common domain errors
var (
	ErrInvalidJSON      = NewDomainError(ErrCodeInvalidJSON, "Invalid request body")
	ErrStoreNotFound    = NewDomainError(ErrCodeStoreNotFound, "Store not found")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrFlowNotFound     = NewDomainError(ErrCodeFlowNotFound, "Category flow not found")
	ErrQuestionNotFound = NewDomainError(ErrCodeQuestionNotFound, "Question not found")
	ErrZoneNotFound     = NewDomainError(ErrCodeZoneNotFound, "Zone not found")
	ErrSessionNotFound  = NewDomainError(ErrCodeSessionNotFound, "Wizard session not found")
	ErrLayoutNotFound   = NewDomainError(ErrCodeLayoutNotFound, "No saved layout for store")
	ErrUnknownConnector = NewDomainError(ErrCodeUnknownConnector, "Connector is not offered")
	ErrUnknownField     = NewDomainError(ErrCodeUnknownField, "Unknown CMS field or source column")
	ErrUnknownStore     = NewDomainError(ErrCodeUnknownStore, "Store is not available for linking")
	ErrQuestionText     = NewDomainError(ErrCodeInvalidQuestion, "Question text is required")
	ErrQuestionType     = NewDomainError(ErrCodeInvalidQuestion, "Question type must be text, multiple_choice or boolean")
)
