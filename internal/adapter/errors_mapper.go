package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/silabos-admin/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The message is taken from the JSON envelope, or from the raw body when the
// response is not an envelope.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: kindOf(resp.StatusCode())}

	var envelope models.Response
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
		apiErr.Fields = envelope.Errors
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}

	return apiErr
}

func kindOf(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedResponse
	}
}
