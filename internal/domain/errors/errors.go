package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrLineOutOfRange = errors.New("line index out of range")
	ErrUnknownField   = errors.New("unknown line field")
	ErrNoReview       = errors.New("no order under review")
	ErrNotReviewable  = errors.New("order is not pending review")
	ErrForbidden      = errors.New("forbidden")
)

// FieldProblem describes one failed check on a draft being submitted.
type FieldProblem struct {
	Line    int    `json:"line,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every problem found before submission.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.Line > 0 {
			parts = append(parts, fmt.Sprintf("line %d: %s %s", p.Line, p.Field, p.Message))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", p.Field, p.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// GatewayError is a non-2xx answer from the API gateway.
type GatewayError struct {
	Status int
	Detail string
}

func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("gateway status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("gateway status %d", e.Status)
}

// UserMessage returns the text shown to the operator for err.
// Server detail and validation problems pass through unchanged; anything else
// is replaced by fallback.
func UserMessage(err error, fallback string) string {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Detail != "" {
		return gwErr.Detail
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) && len(vErr.Problems) > 0 {
		return vErr.Error()
	}
	return fallback
}
