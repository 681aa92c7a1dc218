// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised inside the transport layer. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingSessionToken is returned by the guard when the request has
	// neither an "Authorization" header nor a session cookie.
	ErrMissingSessionToken = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not "Bearer <token>". The session cookie is
	// not consulted in that case.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInactiveUser is returned when the resolved principal is disabled.
	ErrInactiveUser = errors.New("user is inactive")

	// ErrCategoryNotAllowed is returned when the principal's category is not
	// one of the route's allowed categories.
	ErrCategoryNotAllowed = errors.New("user category is not allowed")

	// ErrGuardPanic wraps a panic recovered while authorizing a request.
	ErrGuardPanic = errors.New("panic during authorization")

	// ErrNoPrincipal is returned by handlers that need the principal the
	// guard attaches, when it is absent.
	ErrNoPrincipal = errors.New("no principal in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")
)
