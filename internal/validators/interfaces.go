// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate request bodies before they
//     reach persistence.
//   - FieldErrors: the per-field violation list returned to API clients.
//
// Rules are declared with `validate` struct tags and checked by
// go-playground/validator; messages are produced in Spanish and name the
// JSON field, not the Go field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate returns [FieldErrors] when v violates its rules and
	// [ErrUnsupportedType] when v cannot be validated at all.
	Validate(ctx context.Context, v any) error
}
