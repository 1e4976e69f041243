package dto

import domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"

// ErrorResponse carries the notice shown to the operator.
type ErrorResponse struct {
	Error    string                      `json:"error"`
	Problems []domainErrors.FieldProblem `json:"problems,omitempty"`
}

// MessageResponse carries a success notice.
type MessageResponse struct {
	Message string `json:"message"`
}
