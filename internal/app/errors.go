package app

import (
	"errors"

	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
)

// ErrorKind is the caller-facing class of a use-case error.
type ErrorKind string

const (
	ErrKindValidation ErrorKind = "VALIDATION"
	ErrKindNotFound   ErrorKind = "NOT_FOUND"
	ErrKindInternal   ErrorKind = "INTERNAL_ERROR"
)

// ErrorKindOf classifies err. Anything that is neither a validation error nor
// a missing row is internal.
func ErrorKindOf(err error) ErrorKind {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return ErrKindValidation
	case errors.Is(err, repository.ErrNotFound):
		return ErrKindNotFound
	default:
		return ErrKindInternal
	}
}
