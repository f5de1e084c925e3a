package entities

import (
	"fmt"

	"github.com/pkg/errors"
)

// Business-rule failures returned by the workflow core. All of them are
// expected, caller-recoverable conditions; anything else bubbling out of the
// core is a bug.
var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrValidationExists     = errors.New("validation request already exists")
	ErrDuplicateApplication = errors.New("application for this vacancy already exists")
	ErrVacancyNotFound      = errors.New("vacancy not found")
	ErrInvalidInput         = errors.New("invalid input")
)

// MissingFieldsError reports which required fields were empty, per field.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Fields)
}

// PositionFullError rejects an application because one of the requested
// positions is at capacity. The whole submission fails; nothing is recorded.
type PositionFullError struct {
	Position string
}

func (e *PositionFullError) Error() string {
	return fmt.Sprintf("position %q is full", e.Position)
}

// UnknownPositionError rejects an application naming a position the vacancy
// does not offer.
type UnknownPositionError struct {
	Position string
}

func (e *UnknownPositionError) Error() string {
	return fmt.Sprintf("unknown position %q", e.Position)
}
