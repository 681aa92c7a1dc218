package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/silabos-admin/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidRequest  = errors.New("invalid request")
)

// FieldErrors lists every rule a request violated, keyed by the JSON field
// name. It matches [ErrInvalidRequest] with errors.Is.
type FieldErrors []models.FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidRequest
}
