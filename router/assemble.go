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
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cast"
)

// AssembleOption configures a single assembly.
type AssembleOption func(*assembleConfig)

type assembleConfig struct {
	match     *Match
	reuse     bool
	locale    string
	hasLocale bool
}

// WithMatch assembles relative to m. An empty route name then means the
// matched route, and the non-null captures of m fill in parameters the
// caller does not pass.
func WithMatch(m *Match) AssembleOption {
	return func(c *assembleConfig) {
		c.match = m
	}
}

// WithoutReuse stops captures of the WithMatch match from being used as
// parameter values.
func WithoutReuse() AssembleOption {
	return func(c *assembleConfig) {
		c.reuse = false
	}
}

// WithAssembleLocale translates texts in the given locale. Without it, the
// locale of the WithMatch match is used, then the router default.
func WithAssembleLocale(tag string) AssembleOption {
	return func(c *assembleConfig) {
		c.locale = tag
		c.hasLocale = true
	}
}

// Assemble builds the URL of the route registered under name.
//
// Values in params are converted to strings with cast; a nil value is
// treated as absent and hides a reused capture of the same name. Path
// parameters in optional groups that cannot be filled are left out along
// with their group; a missing required parameter is an ErrMissingParameter
// error. Values that violate their constraint are ErrConstraintViolation
// errors.
func (r *Router) Assemble(name string, params map[string]any, opts ...AssembleOption) (string, error) {
	return r.AssembleContext(context.Background(), name, params, opts...)
}

// AssembleContext is like Assemble and passes ctx to observers.
func (r *Router) AssembleContext(ctx context.Context, name string, params map[string]any, opts ...AssembleOption) (string, error) {
	cfg := assembleConfig{reuse: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasLocale {
		cfg.locale = r.locale
		if cfg.match != nil {
			cfg.locale = cfg.match.Locale
		}
	}
	if name == "" && cfg.match != nil {
		name = cfg.match.Name()
	}

	start := time.Now()
	u, err := r.assemble(name, params, cfg)
	if err != nil {
		r.logger.Debug("route assembly failed", "name", name, "error", err)
	}

	event := AssembleEvent{
		Route:    name,
		URL:      u,
		Locale:   cfg.locale,
		Err:      err,
		Start:    start,
		Duration: time.Since(start),
	}
	for _, o := range r.observers {
		o.OnAssemble(ctx, event)
	}

	return u, err
}

func (r *Router) assemble(name string, params map[string]any, cfg assembleConfig) (string, error) {
	if name == "" {
		return "", ErrNoMatchedRoute
	}
	rt, ok := r.Lookup(name)
	if !ok {
		return "", &RouteError{Name: name}
	}

	values := make(map[string]string, len(params))
	if cfg.reuse && cfg.match != nil {
		for k, v := range cfg.match.Captures.Values() {
			values[k] = v
		}
	}
	for k, v := range params {
		if v == nil {
			delete(values, k)
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return "", fmt.Errorf("assemble route %q: parameter %q: %w", name, k, err)
		}
		values[k] = s
	}

	return rt.Assemble(values, r.translateFunc(cfg.locale))
}

// URLFor assembles the route registered under name relative to the match
// stored in the context of req, if any. See Assemble.
//
// Example:
//
//	func show(w http.ResponseWriter, req *http.Request) {
//	    next, err := rt.URLFor(req, "", map[string]any{"page": 2})
//	    ...
//	}
func (r *Router) URLFor(req *http.Request, name string, params map[string]any, opts ...AssembleOption) (string, error) {
	if m, ok := MatchFromContext(req.Context()); ok {
		opts = append([]AssembleOption{WithMatch(m)}, opts...)
	}

	return r.AssembleContext(req.Context(), name, params, opts...)
}
