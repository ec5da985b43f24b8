package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskboard-io/taskboard-api/internal/domain"
	"github.com/taskboard-io/taskboard-api/internal/platform/postgres"
)

// Fixed client-facing messages for the known error kinds.
const (
	msgEmptyTitle   = "Task title cannot be empty."
	msgTaskNotFound = "Task not found."
	msgBadPayload   = "Invalid request format"
)

// MapErrorToStatusCode maps service errors to HTTP status codes based on the
// error kind. Anything outside the closed taxonomy is a storage or internal
// failure and maps to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyTaskTitle):
		return http.StatusBadRequest
	case errors.Is(err, postgres.ErrTaskNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the client-facing message for a service error.
// Validation and not-found errors use fixed strings; storage failures expose
// the underlying error message.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyTaskTitle):
		return msgEmptyTitle
	case errors.Is(err, postgres.ErrTaskNotFound):
		return msgTaskNotFound
	case err != nil:
		return err.Error()
	default:
		return "An unexpected error occurred"
	}
}

// validationMessage turns a request-struct validation failure into the fixed
// message for the offending field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Title":
			return msgEmptyTitle
		case "ID":
			return "Task id is required."
		}
	}
	return msgBadPayload
}
