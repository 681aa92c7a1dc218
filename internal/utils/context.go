// Package utils provides helpers shared by the transport and service layers:
// typed context keys, session token signing and parsing, JSON response
// writing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/silabos-admin/models"
)

// contextKey is a private type for context keys so that they never collide
// with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the guard stores the resolved
// [models.Principal].
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext returns the principal attached by the guard.
// ok is false when the request did not pass through the guard.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}
