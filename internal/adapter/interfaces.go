// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the silabos-admin REST API.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] returns
// the HTTP implementation. Failed responses are decoded from the JSON
// envelope and mapped by mapHTTPError to the sentinels of errors.go, so
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrForbidden]
// for 403) and [errors.As] with [*APIError] to read the server message and
// the per-field validation list.
package adapter

import (
	"context"

	"github.com/MKhiriev/silabos-admin/models"
)

// ServerAdapter defines communication with the silabos-admin server.
// Implementations attach the session token to authenticated requests and
// unwrap the response envelope.
type ServerAdapter interface {
	// SetToken stores the session token sent as "Authorization: Bearer" on
	// every following request.
	SetToken(token string)

	// Token returns the stored session token, or "" when none is set.
	Token() string

	// Me returns the session of the stored token.
	Me(ctx context.Context) (models.Session, error)

	// RefreshSession asks for a new session token and stores it via SetToken.
	RefreshSession(ctx context.Context) (models.Session, error)

	// Logout clears the session cookie on the server and forgets the token.
	Logout(ctx context.Context) error

	GetDocente(ctx context.Context, id int64) (models.Docente, error)
	ListDocentes(ctx context.Context) ([]models.Docente, error)

	GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error)
	ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error)

	// CreateAporte declares a contribution of the syllabus to a program
	// outcome. Validation failures are returned as an [*APIError] matching
	// [ErrBadRequest] and carrying the invalid fields.
	CreateAporte(ctx context.Context, syllabusID int64, req models.CreateAporteRequest) (models.Aporte, error)

	GetServerVersion(ctx context.Context) (models.AppVersion, error)
}
