// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is the authorization category a user belongs to
// (e.g. "Administrador", "Coordinador", "Docente").
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Principal is the resolved, authenticated caller together with its
// authorization category. It is derived per request from a verified session
// token and the user directory; it is never persisted by the guard.
type Principal struct {
	// ID is the internal identifier of the user record.
	ID int64 `json:"id"`

	// ExternalID is the opaque identity-provider subject (Azure AD "oid").
	ExternalID string `json:"externalId"`

	// TenantID is the identity-provider tenant the user belongs to (Azure AD "tid").
	TenantID string `json:"tenantId"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// Active reports whether the account may use the application.
	Active bool `json:"active"`

	Category Category `json:"category"`
}

// CategoryName returns the name of the principal's authorization category.
func (p Principal) CategoryName() string {
	return p.Category.Name
}

// HasCategory reports whether the principal's category is one of names.
// Matching is exact and case-sensitive.
func (p Principal) HasCategory(names ...string) bool {
	for _, name := range names {
		if p.Category.Name == name {
			return true
		}
	}
	return false
}

// Session describes the caller's current session as returned by the session
// endpoints.
type Session struct {
	Principal Principal `json:"principal"`

	// ExpiresAt is zero when the session token expiry is unknown.
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}
