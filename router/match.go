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
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rivaas.dev/waypoint/router/compiler"
	"rivaas.dev/waypoint/router/route"
)

// Match is the result of a successful match.
type Match struct {
	Route    *route.Route
	Captures Captures
	Locale   string // Locale the route was matched in
}

// Name returns the name of the matched route.
func (m *Match) Name() string {
	return m.Route.Name()
}

// MatchOption configures a single match.
type MatchOption func(*matchConfig)

type matchConfig struct {
	locale string
}

// WithLocale matches translatable texts in the given locale instead of
// the router default.
func WithLocale(tag string) MatchOption {
	return func(c *matchConfig) {
		c.locale = tag
	}
}

// Match finds the first route, in registration order, that accepts method
// and target. target is a path with an optional query string; the path is
// percent-decoded before matching.
//
// A nil Match with a nil error means no route matched. Errors are reserved
// for broken routes: a path pattern that cannot be compiled, met along the
// way, or a malformed query declaration on a route whose method and path
// matched.
func (r *Router) Match(target, method string, opts ...MatchOption) (*Match, error) {
	return r.MatchContext(context.Background(), target, method, opts...)
}

// MatchContext is like Match and passes ctx to observers.
func (r *Router) MatchContext(ctx context.Context, target, method string, opts ...MatchOption) (*Match, error) {
	target, _, _ = strings.Cut(target, "#")
	rawPath, rawQuery, _ := strings.Cut(target, "?")

	path, err := url.PathUnescape(rawPath)
	if err != nil {
		r.logger.Debug("undecodable path matches no route", "target", target, "error", err)
		path = ""
	}

	return r.match(ctx, path, rawQuery, method, opts)
}

// MatchRequest matches the path, query string and method of req.
func (r *Router) MatchRequest(req *http.Request, opts ...MatchOption) (*Match, error) {
	return r.match(req.Context(), req.URL.Path, req.URL.RawQuery, req.Method, opts)
}

func (r *Router) match(ctx context.Context, path, rawQuery, method string, opts []MatchOption) (*Match, error) {
	cfg := matchConfig{locale: r.locale}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	m, err := r.find(path, rawQuery, strings.ToUpper(method), cfg.locale)

	event := MatchEvent{
		Path:     path,
		Method:   method,
		Locale:   cfg.locale,
		Matched:  m != nil,
		Err:      err,
		Start:    start,
		Duration: time.Since(start),
	}
	switch {
	case err != nil:
		r.logger.Error("route matching failed", "path", path, "method", method, "error", err)
	case m == nil:
		r.logger.Debug("no route matched", "path", path, "method", method, "locale", cfg.locale)
	default:
		event.Route = m.Name()
	}
	for _, o := range r.observers {
		o.OnMatch(ctx, event)
	}

	return m, err
}

func (r *Router) find(path, rawQuery, method, loc string) (*Match, error) {
	if path == "" {
		return nil, nil
	}
	translate := r.translateFunc(loc)

	var (
		query    url.Values
		queryErr error
		parsed   bool
	)
	for _, rt := range r.routes {
		if !rt.AllowsMethod(method) {
			continue
		}

		expr, err := rt.Expression(loc, translate)
		if err != nil {
			return nil, fmt.Errorf("match route %q: %w", rt.Name(), err)
		}
		values, ok := expr.Match(path)
		if !ok {
			continue
		}

		m := &Match{Route: rt, Locale: loc}
		for _, v := range values {
			m.Captures.set(v.Name, v.Value, v.Valid)
		}

		if rt.Restricted() {
			if err := rt.Definition().QueryErr(); err != nil {
				return nil, fmt.Errorf("match route %q: %w", rt.Name(), err)
			}
			if !parsed {
				query, queryErr = url.ParseQuery(rawQuery)
				parsed = true
			}
			if queryErr != nil {
				continue
			}

			ok, err := admitQuery(rt, query, translate, &m.Captures)
			if err != nil {
				return nil, fmt.Errorf("match route %q: %w", rt.Name(), err)
			}
			if !ok {
				continue
			}
		}

		return m, nil
	}

	return nil, nil
}

// admitQuery checks query against the declared query parameters of rt and
// adds them to caps. Every supplied key must be declared and its value
// must satisfy the constraint. Declared keys that were not supplied are
// added as null unless the path already captured the name.
func admitQuery(rt *route.Route, query url.Values, translate compiler.TranslateFunc, caps *Captures) (bool, error) {
	declared := rt.Query()

	keys := make(map[string]int, len(declared))
	for i, q := range declared {
		key, err := compiler.ResolveMarkers(q.Key, translate)
		if err != nil {
			return false, err
		}
		keys[key] = i
	}

	supplied := make(map[int]string, len(query))
	for key, values := range query {
		i, ok := keys[key]
		if !ok {
			return false, nil
		}

		value := values[len(values)-1]
		if err := rt.ValidateQuery(declared[i], value); err != nil {
			if errors.Is(err, route.ErrConstraintViolation) {
				return false, nil
			}
			return false, err
		}
		supplied[i] = strings.TrimSpace(value)
	}

	for i, q := range declared {
		name := q.Name()
		if v, ok := supplied[i]; ok {
			caps.set(name, v, true)
		} else if !caps.Has(name) {
			caps.set(name, "", false)
		}
	}

	return true, nil
}
