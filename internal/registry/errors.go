// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors describing malformed route metadata. They are always
// returned wrapped in a [*StartupConfigurationError].
var (
	ErrMissingName       = errors.New("controller name is empty")
	ErrMissingPrefix     = errors.New("controller path prefix is empty")
	ErrInvalidPrefix     = errors.New("controller path prefix must start with '/'")
	ErrInvalidPath       = errors.New("route path must be empty or start with '/'")
	ErrMissingFactory    = errors.New("controller factory is nil")
	ErrNilController     = errors.New("controller factory returned nil")
	ErrMissingHandlerKey = errors.New("route handler key is empty")
	ErrMissingHandler    = errors.New("controller has no handler for route")
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
	ErrRouteCollision    = errors.New("route is already bound")
	ErrMissingGuard      = errors.New("route declares allowed roles but no guard is configured")
)

var (
	// ErrRegistryFrozen is returned by Register after the registry was bound.
	ErrRegistryFrozen = errors.New("registry is already bound, no more controllers can be registered")

	// ErrAlreadyBound is returned by a second call to Bind.
	ErrAlreadyBound = errors.New("registry is already bound")

	// ErrUnknownController is returned by AddRoute for a name that was never
	// registered.
	ErrUnknownController = errors.New("controller is not registered")
)

// StartupConfigurationError reports malformed or colliding route metadata.
// It is fatal: the process must not serve traffic with an incomplete registry.
type StartupConfigurationError struct {
	Controller string
	Method     string
	Pattern    string
	HandlerKey string
	Err        error
}

func (e *StartupConfigurationError) Error() string {
	switch {
	case e.Pattern != "":
		return fmt.Sprintf("startup configuration error: controller %q route %s %s (%s): %v",
			e.Controller, e.Method, e.Pattern, e.HandlerKey, e.Err)
	default:
		return fmt.Sprintf("startup configuration error: controller %q: %v", e.Controller, e.Err)
	}
}

func (e *StartupConfigurationError) Unwrap() error {
	return e.Err
}
