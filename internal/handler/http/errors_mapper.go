package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/silabos-admin/internal/app"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/service"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order and the first match wins. Directory
// failures come before storage errors so that a failing user lookup is
// always a 500, even when the cause is transient.
var errorResponses = []errorResponse{
	{ErrGuardPanic, http.StatusInternalServerError, app.MsgInternalServerError},
	{service.ErrDirectoryLookup, http.StatusInternalServerError, app.MsgInternalServerError},

	{ErrMissingSessionToken, http.StatusUnauthorized, app.MsgMissingSessionToken},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidAuthorizationHeader},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsInvalid},
	{service.ErrMissingIdentityClaims, http.StatusUnauthorized, app.MsgMissingIdentityClaims},
	{service.ErrPrincipalNotFound, http.StatusUnauthorized, app.MsgUserNotRegistered},
	{ErrNoPrincipal, http.StatusUnauthorized, app.MsgMissingSessionToken},
	{ErrInactiveUser, http.StatusForbidden, app.MsgUserInactive},
	{ErrCategoryNotAllowed, http.StatusForbidden, app.MsgForbidden},

	{validators.ErrInvalidRequest, http.StatusBadRequest, app.MsgValidationFailed},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{service.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},

	{store.ErrDocenteNotFound, http.StatusNotFound, app.MsgDocenteNotFound},
	{store.ErrSyllabusNotFound, http.StatusNotFound, app.MsgSyllabusNotFound},
	{store.ErrAporteAlreadyExists, http.StatusConflict, app.MsgAporteAlreadyExists},

	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// responseFromError returns the status and client message for err.
// Unknown errors are reported as 500 with a generic message.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request logger and writes the failure
// envelope. Validation failures carry their per-field list.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var fieldErrors validators.FieldErrors
	errors.As(err, &fieldErrors)

	utils.WriteFailure(w, status, message, fieldErrors...)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteFailure(w, http.StatusNotFound, app.MsgNotFound)
}
