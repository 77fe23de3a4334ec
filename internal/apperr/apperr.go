// Package apperr defines the error taxonomy shared by the account services.
// Service operations return one of these types so the HTTP boundary can
// translate outcomes without inspecting message strings.
package apperr

import "fmt"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing input, one entry per failing
// field. Always recoverable by resubmitting corrected input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// ConflictError reports a business-rule collision, e.g. a national ID already
// registered to another active account.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports that no record exists for the given identifier.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StateError reports an operation not permitted in the record's current
// status, e.g. updating an inactive account.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// InternalError wraps an unexpected collaborator failure, tagged with the
// operation that hit it. The underlying cause stays reachable via Unwrap.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: internal error: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Internal tags err with the originating operation name.
func Internal(op string, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}
