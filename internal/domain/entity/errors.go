package entity

import "fmt"

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Every validation failure in the domain layer is reported through this type,
// raised synchronously at construction or assignment.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
