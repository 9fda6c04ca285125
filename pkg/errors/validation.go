package errors

import "strings"

const (
	FieldErrorType = "field"
	LocationQuery  = "query"
)

// FieldError describes one rejected request parameter.
type FieldError struct {
	Type     string `json:"type"`
	Value    string `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// NewQueryFieldError builds a FieldError for a query string parameter.
func NewQueryFieldError(path, value, msg string) FieldError {
	return FieldError{
		Type:     FieldErrorType,
		Value:    value,
		Msg:      msg,
		Path:     path,
		Location: LocationQuery,
	}
}

// ValidationError aggregates every FieldError found in one request.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError wraps the given field errors.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Path+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
