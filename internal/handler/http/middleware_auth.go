package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/models"
)

// guard returns the middleware that admits only active principals whose
// category is one of allowedRoles.
//
// For every request it:
//  1. extracts the session token ("Authorization: Bearer" header first, then
//     the session cookie);
//  2. verifies the token and its identity claims;
//  3. resolves the principal in the user directory;
//  4. checks that the principal is active and its category is allowed.
//
// On success the principal is attached to the request context (see
// [utils.WithPrincipal]) and next is invoked with the request otherwise
// unchanged. Its response is passed through untouched. On any failure next is
// not invoked and the error envelope is written instead: 401 for missing or
// unusable sessions, 403 for inactive users and disallowed categories, 500
// for directory failures and panics.
func (h *Handler) guard(allowedRoles []string) func(http.Handler) http.Handler {
	roles := slices.Clone(allowedRoles)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := h.authorize(r, roles)
			if err != nil {
				writeError(w, r, err)
				return
			}

			l := logger.FromRequest(r).With().
				Int64("user_id", principal.ID).
				Str("category", principal.CategoryName()).
				Logger()

			ctx := utils.WithPrincipal(r.Context(), principal)
			ctx = l.WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authorize runs the guard checks. A panic in any of them is reported as
// ErrGuardPanic.
func (h *Handler) authorize(r *http.Request, allowedRoles []string) (principal models.Principal, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			principal = models.Principal{}
			err = fmt.Errorf("%w: %v", ErrGuardPanic, rec)
		}
	}()

	tokenString, err := h.sessionToken(r)
	if err != nil {
		return models.Principal{}, err
	}

	ctx := r.Context()
	claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Principal{}, err
	}

	principal, err = h.services.AuthService.ResolvePrincipal(ctx, claims)
	if err != nil {
		return models.Principal{}, err
	}

	if !principal.Active {
		return models.Principal{}, fmt.Errorf("%w: user %d", ErrInactiveUser, principal.ID)
	}

	if !principal.HasCategory(allowedRoles...) {
		return models.Principal{}, fmt.Errorf("%w: %q", ErrCategoryNotAllowed, principal.CategoryName())
	}

	return principal, nil
}

// sessionToken returns the raw session token of r.
//
// The "Authorization" header takes precedence. When it is present but
// malformed the request is rejected without looking at the cookie.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	cookie, err := r.Cookie(h.sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrMissingSessionToken
	}

	return cookie.Value, nil
}
