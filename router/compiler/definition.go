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

package compiler

import (
	"fmt"
	"maps"
	"net/http"
	"regexp"
	"slices"
	"strings"
)

const (
	// DefaultPathConstraint bounds a path parameter declared without <...>.
	DefaultPathConstraint = `[^/]+`

	// DefaultQueryConstraint bounds a query parameter declared without <...>.
	DefaultQueryConstraint = `.*`
)

var (
	methodPrefix = regexp.MustCompile(`^\s*([A-Za-z]+(?:\s*\|\s*[A-Za-z]+)*)\s+`)
	paramDecl    = regexp.MustCompile(`:([A-Za-z]\w*)(?:<([^>]+)>)?`)
	queryDecl    = regexp.MustCompile(`^([^=]+)(?:(=)(?:<([^>]+)>)?)?$`)
)

// QueryKind tells how a query parameter was declared.
type QueryKind uint8

const (
	// QueryPresence is a bare name (?latest).
	QueryPresence QueryKind = iota
	// QueryValue is a name with = and an optional constraint (?page= or ?page=<\d+>).
	QueryValue
)

func (k QueryKind) String() string {
	if k == QueryValue {
		return "value"
	}

	return "presence"
}

// QueryParam is one declared query string parameter.
type QueryParam struct {
	Key        string    // Declared key, may contain {text} markers
	Constraint string    // Regular expression body the value must fully match
	Kind       QueryKind // Declaration form
}

// Name returns the name the parameter is captured and assembled under:
// the declared key with translation markers reduced to their text.
func (q QueryParam) Name() string {
	return StripMarkers(q.Key)
}

// Definition is a compiled route definition.
// A Definition is immutable and safe for concurrent use.
type Definition struct {
	raw         string
	methods     []string
	pattern     string
	nodes       []Node
	params      []string
	constraints map[string]string
	query       []QueryParam
	restricted  bool
	err         error // skeleton
	queryErr    error // query declaration
}

// Compile compiles a raw route definition. It never fails; problems with
// the definition are reported by Err and by the operations that need the
// skeleton.
func Compile(raw string) *Definition {
	def := &Definition{
		raw:         raw,
		methods:     []string{http.MethodGet},
		constraints: make(map[string]string),
	}

	rest := raw
	if m := methodPrefix.FindStringSubmatchIndex(rest); m != nil {
		def.methods = splitMethods(rest[m[2]:m[3]])
		rest = rest[m[1]:]
	}

	rest = paramDecl.ReplaceAllStringFunc(rest, func(decl string) string {
		sub := paramDecl.FindStringSubmatch(decl)
		name, constraint := sub[1], sub[2]
		if constraint != "" {
			def.constraints[name] = constraint
		} else if _, ok := def.constraints[name]; !ok {
			def.constraints[name] = DefaultPathConstraint
		}

		return ":" + name
	})

	path, query, hasQuery := strings.Cut(rest, "?")
	def.pattern = path
	if hasQuery {
		def.restricted = true
		def.queryErr = def.compileQuery(strings.TrimSpace(query))
	}

	nodes, err := parseSkeleton(path)
	def.err = err
	def.nodes = nodes
	def.params = paramNames(nodes)

	return def
}

func (d *Definition) compileQuery(spec string) error {
	if spec == "" || spec == "!" {
		return nil
	}

	for _, token := range splitQuery(spec) {
		if token == "" {
			continue
		}
		sub := queryDecl.FindStringSubmatch(token)
		if sub == nil {
			return &SyntaxError{
				Pattern: d.raw,
				Offset:  -1,
				Msg:     fmt.Sprintf("query token %q is not name, name= or name=<constraint>", token),
			}
		}

		param := QueryParam{Key: sub[1], Constraint: DefaultQueryConstraint, Kind: QueryPresence}
		if sub[2] != "" {
			param.Kind = QueryValue
		}
		if sub[3] != "" {
			param.Constraint = sub[3]
		}

		if i := slices.IndexFunc(d.query, func(q QueryParam) bool { return q.Key == param.Key }); i >= 0 {
			d.query[i] = param
		} else {
			d.query = append(d.query, param)
		}
	}

	return nil
}

// splitQuery splits a query declaration on & characters outside <...>.
func splitQuery(spec string) []string {
	var (
		parts  []string
		inside bool
		start  int
	)
	for i := 0; i < len(spec); i++ {
		switch spec[i] {
		case '<':
			inside = true
		case '>':
			inside = false
		case '&':
			if !inside {
				parts = append(parts, spec[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, spec[start:])
}

func splitMethods(prefix string) []string {
	var methods []string
	for m := range strings.SplitSeq(prefix, "|") {
		m = strings.ToUpper(strings.TrimSpace(m))
		if !slices.Contains(methods, m) {
			methods = append(methods, m)
		}
	}

	return methods
}

// Raw returns the definition string as written.
func (d *Definition) Raw() string {
	return d.raw
}

// Pattern returns the path skeleton: the path with the method prefix, the
// constraint annotations and the query declaration removed.
func (d *Definition) Pattern() string {
	return d.pattern
}

// Methods returns the accepted HTTP methods, upper-cased.
func (d *Definition) Methods() []string {
	return slices.Clone(d.methods)
}

// AllowsMethod reports whether method is accepted. The comparison is
// case-insensitive.
func (d *Definition) AllowsMethod(method string) bool {
	return slices.Contains(d.methods, strings.ToUpper(method))
}

// Nodes returns the parsed path skeleton. A malformed query declaration
// does not prevent the skeleton from being used; see QueryErr.
func (d *Definition) Nodes() ([]Node, error) {
	if d.err != nil {
		return nil, d.err
	}

	return d.nodes, nil
}

// Params returns the path parameter names in order of first appearance.
func (d *Definition) Params() []string {
	return slices.Clone(d.params)
}

// PathConstraint returns the constraint body for a path parameter.
func (d *Definition) PathConstraint(name string) string {
	if c, ok := d.constraints[name]; ok {
		return c
	}

	return DefaultPathConstraint
}

// PathConstraints returns a copy of the declared path constraints.
func (d *Definition) PathConstraints() map[string]string {
	return maps.Clone(d.constraints)
}

// Query returns the declared query parameters in declaration order.
func (d *Definition) Query() []QueryParam {
	return slices.Clone(d.query)
}

// Restricted reports whether the definition declared a query section.
// Restricted routes admit only the declared query parameters.
func (d *Definition) Restricted() bool {
	return d.restricted
}

// Err returns the deferred syntax error of the definition, if any: the
// skeleton error first, then the query declaration error.
func (d *Definition) Err() error {
	if d.err != nil {
		return d.err
	}

	return d.queryErr
}

// QueryErr returns the error of a malformed query declaration, if any.
func (d *Definition) QueryErr() error {
	return d.queryErr
}
