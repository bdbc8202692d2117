package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced id does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when an integration is not configured.
	ErrUnavailable = errors.New("integration not configured")
)

// FieldError describes one missing or malformed request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Reason }

// ValidationErrors collects every field problem found in one request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Add appends a field problem.
func (v *ValidationErrors) Add(field, reason string) {
	*v = append(*v, FieldError{Field: field, Reason: reason})
}

// Required appends a "required" problem when value is blank.
func (v *ValidationErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

// OrNil returns nil when nothing was collected.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Fields lists the offending field names in order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		out = append(out, e.Field)
	}
	return out
}

// Invalid is a shorthand for a single-field validation failure.
func Invalid(field, reason string) error {
	return ValidationErrors{{Field: field, Reason: reason}}
}

// IntegrationError wraps a failed call to an external collaborator.
type IntegrationError struct {
	Integration string
	Err         error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Integration, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

// Integration wraps err as an IntegrationError, passing nil through.
func Integration(name string, err error) error {
	if err == nil {
		return nil
	}
	return &IntegrationError{Integration: name, Err: err}
}

// IsValidation reports whether err carries field validation problems.
func IsValidation(err error) bool {
	var v ValidationErrors
	return errors.As(err, &v)
}
