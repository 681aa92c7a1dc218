package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/silabos-admin/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrInvalidBaseURL     = errors.New("invalid server base URL")
	ErrUnexpectedResponse = errors.New("unexpected server response")
)

// APIError is a failed API response. It unwraps to the sentinel of its
// status code.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
