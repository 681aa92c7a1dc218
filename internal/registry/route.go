// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"net/http"
	"slices"
	"strings"
)

// supportedMethods is the fixed HTTP verb set a route may be declared with.
var supportedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// RouteDescriptor declares one HTTP route of a controller.
//
// A descriptor is immutable once registered. The same HandlerKey may appear
// in several descriptors to expose one handler under several paths or verbs.
type RouteDescriptor struct {
	// Path is the route template relative to the controller prefix. It may
	// contain chi placeholders such as "{id}".
	Path string

	// Method is the HTTP verb. An empty Method means GET.
	Method string

	// HandlerKey names the controller handler the route is bound to.
	HandlerKey string

	// AllowedRoles lists the authorization categories admitted by the guard.
	// An empty list leaves the route unguarded.
	AllowedRoles []string
}

// Route declares a GET route bound to handlerKey.
func Route(path, handlerKey string) RouteDescriptor {
	return RouteDescriptor{Path: path, Method: http.MethodGet, HandlerKey: handlerKey}
}

// WithMethod returns a copy of d using method.
func (d RouteDescriptor) WithMethod(method string) RouteDescriptor {
	d.Method = method
	return d
}

// WithRoles returns a copy of d guarded by the given categories.
func (d RouteDescriptor) WithRoles(roles ...string) RouteDescriptor {
	d.AllowedRoles = slices.Clone(roles)
	return d
}

// Get is Route spelled after the verb, for symmetry with Post.
func Get(path, handlerKey string) RouteDescriptor {
	return Route(path, handlerKey)
}

// Post declares a POST route bound to handlerKey. Other verbs use WithMethod.
func Post(path, handlerKey string) RouteDescriptor {
	return Route(path, handlerKey).WithMethod(http.MethodPost)
}

// normalized fills in defaults and detaches the descriptor from caller-owned
// slices.
func (d RouteDescriptor) normalized() RouteDescriptor {
	d.Method = strings.ToUpper(strings.TrimSpace(d.Method))
	if d.Method == "" {
		d.Method = http.MethodGet
	}
	d.AllowedRoles = slices.Clone(d.AllowedRoles)
	return d
}

// Guarded reports whether the route must be wrapped by the guard.
func (d RouteDescriptor) Guarded() bool {
	return len(d.AllowedRoles) > 0
}

// FullPath joins prefix and the route path.
func (d RouteDescriptor) FullPath(prefix string) string {
	if d.Path == "" {
		return prefix
	}
	return strings.TrimSuffix(prefix, "/") + d.Path
}

// Key identifies the route binding: "<METHOD> <full path>".
func (d RouteDescriptor) Key(prefix string) string {
	return d.Method + " " + d.FullPath(prefix)
}

func isSupportedMethod(method string) bool {
	return slices.Contains(supportedMethods, method)
}
