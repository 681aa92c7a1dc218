// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a session token.
//
// ExternalID ("oid") and TenantID ("tid") mirror the Azure AD claim names the
// session was originally derived from.
type Claims struct {
	jwt.RegisteredClaims

	// ExternalID is the identity-provider subject of the user.
	ExternalID string `json:"oid"`

	// TenantID is the identity-provider tenant of the user.
	TenantID string `json:"tid"`
}

// ExpiresAtTime returns the expiry of the token or the zero time when the
// token has no "exp" claim.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Token wraps a signed session token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the parsed claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
