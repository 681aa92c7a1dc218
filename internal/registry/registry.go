// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Controller exposes the handlers of one controller keyed by handler key.
// It replaces method lookup by name: every HandlerKey declared for the
// controller must be present in the returned table.
type Controller interface {
	Handlers() map[string]http.HandlerFunc
}

// Factory produces the controller instance from the application dependencies.
type Factory[D any] func(deps D) Controller

// Guard wraps a handler so that only callers whose category is one of
// allowedRoles reach it.
type Guard func(allowedRoles []string) func(http.Handler) http.Handler

// ControllerRegistration is the registry entry of one controller.
type ControllerRegistration[D any] struct {
	Name    string
	Prefix  string
	Routes  []RouteDescriptor
	Factory Factory[D]
}

// Binding describes a live route produced by Bind.
type Binding struct {
	// Name is "<controller>.<handlerKey>".
	Name    string
	Method  string
	Pattern string
	Guarded bool
}

// BindOptions tune Bind.
type BindOptions struct {
	// Guard is applied to every route that declares allowed roles.
	Guard Guard

	// OnBind is called for every live binding, in binding order.
	OnBind func(Binding)
}

// Registry is the process-wide table of controller registrations.
//
// It is written during package initialisation and read once by Bind. The
// mutex only protects registration against concurrent init of test binaries;
// after Bind the registry is read-only.
type Registry[D any] struct {
	mu          sync.Mutex
	controllers map[string]*ControllerRegistration[D]
	order       []string
	bound       bool
}

// New creates an empty registry.
func New[D any]() *Registry[D] {
	return &Registry[D]{
		controllers: make(map[string]*ControllerRegistration[D]),
	}
}

// Register records a controller with its path prefix and routes.
//
// Registration is idempotent per controller name: registering a name that is
// already known leaves the existing registration untouched and reports false.
// Malformed metadata is not rejected here; Bind validates the whole table so
// that every problem surfaces at start-up.
func (reg *Registry[D]) Register(name, prefix string, factory Factory[D], routes ...RouteDescriptor) (bool, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.bound {
		return false, ErrRegistryFrozen
	}

	if _, ok := reg.controllers[name]; ok {
		return false, nil
	}

	registration := &ControllerRegistration[D]{
		Name:    name,
		Prefix:  prefix,
		Factory: factory,
		Routes:  make([]RouteDescriptor, 0, len(routes)),
	}
	for _, route := range routes {
		registration.Routes = append(registration.Routes, route.normalized())
	}

	reg.controllers[name] = registration
	reg.order = append(reg.order, name)

	return true, nil
}

// MustRegister is Register for init functions: it panics when the registry
// is already frozen.
func (reg *Registry[D]) MustRegister(name, prefix string, factory Factory[D], routes ...RouteDescriptor) {
	if _, err := reg.Register(name, prefix, factory, routes...); err != nil {
		panic(fmt.Sprintf("registry: registering controller %q: %v", name, err))
	}
}

// AddRoute appends a route to an already registered controller.
func (reg *Registry[D]) AddRoute(name string, route RouteDescriptor) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.bound {
		return ErrRegistryFrozen
	}

	registration, ok := reg.controllers[name]
	if !ok {
		return &StartupConfigurationError{Controller: name, Err: ErrUnknownController}
	}
	registration.Routes = append(registration.Routes, route.normalized())

	return nil
}

// Controllers returns the registrations in registration order. The returned
// values are copies.
func (reg *Registry[D]) Controllers() []ControllerRegistration[D] {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	result := make([]ControllerRegistration[D], 0, len(reg.order))
	for _, name := range reg.order {
		registration := *reg.controllers[name]
		registration.Routes = slices.Clone(registration.Routes)
		result = append(result, registration)
	}
	return result
}

// Clone returns an unbound registry holding copies of every registration.
// Route tables built from package init can then be bound more than once,
// e.g. one router per test.
func (reg *Registry[D]) Clone() *Registry[D] {
	clone := New[D]()
	for _, registration := range reg.Controllers() {
		clone.controllers[registration.Name] = &registration
		clone.order = append(clone.order, registration.Name)
	}
	return clone
}

// Bind instantiates every controller and registers every route on router.
//
// Every route is first mounted on a scratch router, so metadata errors and
// patterns chi rejects are both reported before router is touched. A failing
// Bind leaves router without any route of this registry and the registry
// unbound. Bind may be called only once.
func (reg *Registry[D]) Bind(router chi.Router, deps D, opts BindOptions) ([]Binding, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.bound {
		return nil, ErrAlreadyBound
	}

	plan, err := reg.plan(deps, opts)
	if err != nil {
		return nil, err
	}

	bindings := make([]Binding, 0, len(plan))
	for _, p := range plan {
		if err := mount(router, p); err != nil {
			return nil, err
		}

		bindings = append(bindings, p.binding)
		if opts.OnBind != nil {
			opts.OnBind(p.binding)
		}
	}

	reg.bound = true

	return bindings, nil
}

// plannedRoute is a validated route ready to be mounted.
type plannedRoute struct {
	binding    Binding
	handlerKey string
	controller string
	handler    http.Handler
}

func (reg *Registry[D]) plan(deps D, opts BindOptions) ([]plannedRoute, error) {
	seen := make(map[string]string)
	plan := make([]plannedRoute, 0)
	scratch := chi.NewRouter()

	for _, name := range reg.order {
		registration := reg.controllers[name]
		if err := registration.validate(); err != nil {
			return nil, err
		}

		controller := registration.Factory(deps)
		if controller == nil {
			return nil, &StartupConfigurationError{Controller: name, Err: ErrNilController}
		}
		handlers := controller.Handlers()

		for _, route := range registration.Routes {
			pattern := route.FullPath(registration.Prefix)
			routeErr := func(err error) error {
				return &StartupConfigurationError{
					Controller: name,
					Method:     route.Method,
					Pattern:    pattern,
					HandlerKey: route.HandlerKey,
					Err:        err,
				}
			}

			if route.HandlerKey == "" {
				return nil, routeErr(ErrMissingHandlerKey)
			}
			if route.Path != "" && route.Path[0] != '/' {
				return nil, routeErr(ErrInvalidPath)
			}
			if !isSupportedMethod(route.Method) {
				return nil, routeErr(ErrUnsupportedMethod)
			}

			handlerFunc, ok := handlers[route.HandlerKey]
			if !ok || handlerFunc == nil {
				return nil, routeErr(ErrMissingHandler)
			}

			collisionKey := route.Method + " " + normalizePattern(pattern)
			if owner, ok := seen[collisionKey]; ok {
				return nil, routeErr(fmt.Errorf("%w by %s", ErrRouteCollision, owner))
			}

			var handler http.Handler = handlerFunc
			if route.Guarded() {
				if opts.Guard == nil {
					return nil, routeErr(ErrMissingGuard)
				}
				handler = opts.Guard(route.AllowedRoles)(handler)
			}

			bindingName := name + "." + route.HandlerKey
			seen[collisionKey] = bindingName

			p := plannedRoute{
				binding: Binding{
					Name:    bindingName,
					Method:  route.Method,
					Pattern: pattern,
					Guarded: route.Guarded(),
				},
				handlerKey: route.HandlerKey,
				controller: name,
				handler:    handler,
			}
			if err := mount(scratch, p); err != nil {
				return nil, err
			}
			plan = append(plan, p)
		}
	}

	return plan, nil
}

func (r *ControllerRegistration[D]) validate() error {
	switch {
	case r.Name == "":
		return &StartupConfigurationError{Controller: r.Name, Err: ErrMissingName}
	case r.Prefix == "":
		return &StartupConfigurationError{Controller: r.Name, Err: ErrMissingPrefix}
	case r.Prefix[0] != '/':
		return &StartupConfigurationError{Controller: r.Name, Err: ErrInvalidPrefix}
	case r.Factory == nil:
		return &StartupConfigurationError{Controller: r.Name, Err: ErrMissingFactory}
	}
	return nil
}

// mount registers one planned route on router. chi panics on patterns it
// cannot accept; the panic is reported as a start-up configuration error.
func mount(router chi.Router, p plannedRoute) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &StartupConfigurationError{
				Controller: p.controller,
				Method:     p.binding.Method,
				Pattern:    p.binding.Pattern,
				HandlerKey: p.handlerKey,
				Err:        fmt.Errorf("router rejected route: %v", rec),
			}
		}
	}()

	router.Method(p.binding.Method, p.binding.Pattern, p.handler)
	return nil
}

// normalizePattern erases placeholder names so that "/a/{id}" and "/a/{x}"
// are detected as the same route. Regexp constraints are kept and may contain
// braces themselves: "/a/{id:[0-9]{3}}" becomes "/a/{:[0-9]{3}}". Unbalanced
// patterns are returned unchanged; chi rejects them when mounted.
func normalizePattern(pattern string) string {
	var (
		b     strings.Builder
		depth int
		name  bool
	)
	for _, c := range pattern {
		switch {
		case c == '{':
			depth++
			if depth == 1 {
				name = true
				b.WriteRune(c)
				continue
			}
		case c == '}':
			depth--
			if depth < 0 {
				return pattern
			}
			if depth == 0 {
				name = false
			}
		case c == ':' && depth == 1 && name:
			name = false
		}
		if !name {
			b.WriteRune(c)
		}
	}
	if depth != 0 {
		return pattern
	}
	return b.String()
}
