package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-prep/internal/rendering"
	"github.com/jonathan/interview-prep/internal/session"
	"github.com/jonathan/interview-prep/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNoSubmission indicates the request carries no usable session.
type ErrNoSubmission struct{}

func (e *ErrNoSubmission) Error() string {
	return "no input found"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Content and template failures fall through to 500.
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		stage      *types.UnknownStageError
		section    *rendering.UnknownSectionError
		noSub      *ErrNoSubmission
		tooLarge   *session.PayloadTooLargeError
		maxBytes   *http.MaxBytesError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validation), errors.As(err, &stage):
		return http.StatusBadRequest
	case errors.As(err, &section), errors.As(err, &noSub), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &tooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
