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

package route

import (
	"sync"

	"rivaas.dev/waypoint/router/compiler"
)

// Route is a named, compiled route definition.
// Routes are safe for concurrent use.
type Route struct {
	name    string
	def     *compiler.Definition
	view    any
	handler any

	mu          sync.RWMutex
	expressions map[string]expression // by locale
	pathRes     map[string]constraint
	queryRes    map[string]constraint
}

type expression struct {
	expr *compiler.Expression
	err  error
}

// New compiles pattern into a route called name.
// view and handler are stored unexamined.
func New(name, pattern string, view, handler any) *Route {
	return &Route{
		name:        name,
		def:         compiler.Compile(pattern),
		view:        view,
		handler:     handler,
		expressions: make(map[string]expression),
		pathRes:     make(map[string]constraint),
		queryRes:    make(map[string]constraint),
	}
}

// Name returns the route name.
func (r *Route) Name() string {
	return r.name
}

// Raw returns the definition the route was created from.
func (r *Route) Raw() string {
	return r.def.Raw()
}

// Pattern returns the path skeleton of the definition.
func (r *Route) Pattern() string {
	return r.def.Pattern()
}

// Methods returns the accepted HTTP methods.
func (r *Route) Methods() []string {
	return r.def.Methods()
}

// AllowsMethod reports whether the route accepts method.
func (r *Route) AllowsMethod(method string) bool {
	return r.def.AllowsMethod(method)
}

// Params returns the path parameter names in order of first appearance.
func (r *Route) Params() []string {
	return r.def.Params()
}

// Query returns the declared query string parameters.
func (r *Route) Query() []compiler.QueryParam {
	return r.def.Query()
}

// Restricted reports whether the route constrains the query string.
func (r *Route) Restricted() bool {
	return r.def.Restricted()
}

// Definition returns the compiled definition.
func (r *Route) Definition() *compiler.Definition {
	return r.def
}

// View returns the view value the route was created with.
func (r *Route) View() any {
	return r.view
}

// Handler returns the handler value the route was created with.
func (r *Route) Handler() any {
	return r.handler
}

// Err returns the first problem found in the definition, if any.
func (r *Route) Err() error {
	return r.def.Err()
}

// Expression returns the match expression of the route for locale,
// compiling it on first use. translate must resolve texts for locale;
// the result is cached under locale, errors included.
func (r *Route) Expression(locale string, translate compiler.TranslateFunc) (*compiler.Expression, error) {
	r.mu.RLock()
	e, ok := r.expressions[locale]
	r.mu.RUnlock()
	if ok {
		return e.expr, e.err
	}

	expr, err := compiler.NewExpression(r.def, translate)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.expressions[locale]; ok {
		return e.expr, e.err
	}
	r.expressions[locale] = expression{expr: expr, err: err}

	return expr, err
}

// Info is a snapshot of a route for listings and diagnostics.
type Info struct {
	Name       string            `json:"name"`
	Pattern    string            `json:"pattern"`
	Raw        string            `json:"raw"`
	Methods    []string          `json:"methods"`
	Params     []string          `json:"params,omitempty"`
	Query      []QueryInfo       `json:"query,omitempty"`
	Restricted bool              `json:"restricted"`
	Constraint map[string]string `json:"constraints,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// QueryInfo describes one declared query parameter.
type QueryInfo struct {
	Key        string `json:"key"`
	Constraint string `json:"constraint"`
	Kind       string `json:"kind"`
}

// Info returns a snapshot of the route.
func (r *Route) Info() Info {
	info := Info{
		Name:       r.name,
		Pattern:    r.def.Pattern(),
		Raw:        r.def.Raw(),
		Methods:    r.def.Methods(),
		Params:     r.def.Params(),
		Restricted: r.def.Restricted(),
		Constraint: r.def.PathConstraints(),
	}
	for _, q := range r.def.Query() {
		info.Query = append(info.Query, QueryInfo{Key: q.Key, Constraint: q.Constraint, Kind: q.Kind.String()})
	}
	if err := r.def.Err(); err != nil {
		info.Error = err.Error()
	}

	return info
}
