// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"fmt"
	"log/slog"
	"slices"

	riverrors "rivaas.dev/waypoint/errors"
	"rivaas.dev/waypoint/locale"
	"rivaas.dev/waypoint/router/compiler"
	"rivaas.dev/waypoint/router/route"
)

// defaultParamCountThreshold is the number of path parameters above which
// registration emits DiagHighParamCount.
const defaultParamCountThreshold = 8

// Option configures a Router.
type Option func(*Router)

// Router is a registry of named routes. Routes are tried in registration
// order when matching and looked up by name when assembling.
//
// Routes are registered during setup from a single goroutine. Once
// registration is done, Match, Assemble and ServeHTTP are safe for
// concurrent use.
type Router struct {
	routes []*route.Route
	index  map[string]int

	logger         *slog.Logger
	translator     Translator
	locale         string
	diagnostics    DiagnosticHandler
	observers      []Observer
	formatter      riverrors.Formatter
	paramThreshold int
}

// New returns a Router configured with opts.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		index:          make(map[string]int),
		logger:         slog.New(slog.DiscardHandler),
		formatter:      riverrors.NewRFC9457(""),
		paramThreshold: defaultParamCountThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("router configuration validation failed: %w", err)
	}

	return r, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Router) validate() error {
	if r.locale != "" {
		if _, err := locale.Canonical(r.locale); err != nil {
			return fmt.Errorf("%w: default locale: %w", ErrInvalidOption, err)
		}
	}
	if r.paramThreshold < 1 {
		return fmt.Errorf("%w: parameter count threshold must be positive", ErrInvalidOption)
	}
	if r.logger == nil {
		return fmt.Errorf("%w: logger is nil", ErrInvalidOption)
	}
	if r.formatter == nil {
		return fmt.Errorf("%w: formatter is nil", ErrInvalidOption)
	}

	return nil
}

// RouteOption configures a route at registration.
type RouteOption func(*routeConfig)

type routeConfig struct {
	view    any
	handler any
}

// WithView attaches an opaque view value to the route.
func WithView(view any) RouteOption {
	return func(c *routeConfig) {
		c.view = view
	}
}

// WithHandler attaches a handler to the route. An http.Handler or a
// func(http.ResponseWriter, *http.Request) is served by ServeHTTP; any
// other value is stored for the caller.
func WithHandler(handler any) RouteOption {
	return func(c *routeConfig) {
		c.handler = handler
	}
}

// Route registers pattern under name and returns the compiled route.
// Registering a name again replaces the earlier route but keeps its
// position in the matching order.
//
// Route never fails. A malformed pattern is reported to the diagnostics
// handler and the logger, and surfaces as ErrInvalidPattern when the route
// is matched or assembled.
func (r *Router) Route(name, pattern string, opts ...RouteOption) *route.Route {
	var cfg routeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := route.New(name, pattern, cfg.view, cfg.handler)
	if i, ok := r.index[name]; ok {
		r.routes[i] = rt
		r.emit(DiagRouteRedefined, "route redefined", map[string]any{"name": name, "pattern": pattern})
	} else {
		r.index[name] = len(r.routes)
		r.routes = append(r.routes, rt)
		r.emit(DiagRouteRegistered, "route registered", map[string]any{"name": name, "pattern": pattern})
	}
	r.logger.Debug("route registered", "name", name, "pattern", pattern, "methods", rt.Methods())

	if err := rt.Err(); err != nil {
		r.logger.Warn("route pattern is invalid", "name", name, "pattern", pattern, "error", err)
		r.emit(DiagInvalidPattern, err.Error(), map[string]any{"name": name, "pattern": pattern})
	}
	if n := len(rt.Params()); n > r.paramThreshold {
		r.emit(DiagHighParamCount, "route has many path parameters", map[string]any{
			"name":      name,
			"count":     n,
			"threshold": r.paramThreshold,
		})
	}

	return rt
}

// Lookup returns the route registered under name.
func (r *Router) Lookup(name string) (*route.Route, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}

	return r.routes[i], true
}

// Routes returns the registered routes in matching order.
func (r *Router) Routes() []*route.Route {
	return slices.Clone(r.routes)
}

// translateFunc binds the translator to loc.
func (r *Router) translateFunc(loc string) compiler.TranslateFunc {
	if r.translator == nil {
		return nil
	}

	return func(text string) string {
		return r.translator.Translate(text, loc)
	}
}

func (r *Router) emit(kind DiagnosticKind, msg string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: msg, Fields: fields})
}
