// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/silabos-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the session token helpers.
var (
	ErrInvalidTokenParams  = errors.New("invalid params for generating session token")
	ErrInvalidBearerHeader = errors.New("invalid authorization header")
)

// GenerateSessionToken signs an HS256 session token for the given identity.
//
// Claims: iss, sub (= externalID), oid, tid, iat and exp = now + duration.
func GenerateSessionToken(issuer, externalID, tenantID string, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || duration <= 0 || signKey == "" || externalID == "" || tenantID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   externalID,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ExternalID: externalID,
		TenantID:   tenantID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: signed}, nil
}

// ParseSessionToken verifies signature, issuer and expiry of tokenString and
// returns its claims. An "exp" claim is mandatory. Errors wrap the
// golang-jwt sentinels (e.g. [jwt.ErrTokenExpired]) so callers can tell
// expiry apart from other failures.
func ParseSessionToken(tokenString, signKey, issuer string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating session token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidBearerHeader
	}
	return parts[1], nil
}
