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
	"net/url"
	"strings"

	"rivaas.dev/waypoint/router/compiler"
)

// Assemble builds a URL for the route from params. Translatable texts in
// the path and in query keys are resolved through translate.
//
// Path parameters are consumed from params as they are placed; declared
// query parameters are emitted from what is left, in declaration order.
// params is not modified.
func (r *Route) Assemble(params map[string]string, translate compiler.TranslateFunc) (string, error) {
	if err := r.def.Err(); err != nil {
		return "", err
	}
	nodes, err := r.def.Nodes()
	if err != nil {
		return "", err
	}

	a := &assembler{
		route:    r,
		left:     make(map[string]string, len(params)),
		consumed: make(map[string]string),
		values:   make(map[*compiler.Param]string),
		dropped:  make(map[*compiler.Optional]bool),
	}
	for k, v := range params {
		a.left[k] = v
	}

	if err := a.groups(nodes); err != nil {
		return "", err
	}
	for _, n := range nodes {
		if p, ok := n.(*compiler.Param); ok {
			if err := a.required(p); err != nil {
				return "", err
			}
		}
	}

	var sb strings.Builder
	if err := a.render(&sb, nodes, translate); err != nil {
		return "", err
	}

	query, err := a.query(translate)
	if err != nil {
		return "", err
	}
	if query != "" {
		sb.WriteByte('?')
		sb.WriteString(query)
	}

	return sb.String(), nil
}

type assembler struct {
	route    *Route
	left     map[string]string // not yet placed
	consumed map[string]string // placed in the path
	values   map[*compiler.Param]string
	dropped  map[*compiler.Optional]bool
}

// lookup returns the value for name. A name already placed in the path
// keeps its value for later occurrences.
func (a *assembler) lookup(name string) (string, bool) {
	if v, ok := a.left[name]; ok {
		return v, true
	}
	v, ok := a.consumed[name]

	return v, ok
}

func (a *assembler) place(p *compiler.Param, value string) error {
	if err := a.route.ValidatePath(p.Name, value); err != nil {
		return err
	}
	a.values[p] = value
	a.consumed[p.Name] = value
	delete(a.left, p.Name)

	return nil
}

// groups resolves optional groups inside out. A group whose own
// parameters are not all available is dropped; the parameters placed
// before the missing one stay consumed.
func (a *assembler) groups(nodes []compiler.Node) error {
	for _, n := range nodes {
		opt, ok := n.(*compiler.Optional)
		if !ok {
			continue
		}
		if err := a.groups(opt.Nodes); err != nil {
			return err
		}
		if err := a.group(opt); err != nil {
			return err
		}
	}

	return nil
}

func (a *assembler) group(opt *compiler.Optional) error {
	for _, n := range opt.Nodes {
		p, ok := n.(*compiler.Param)
		if !ok {
			continue
		}
		v, ok := a.lookup(p.Name)
		if !ok {
			a.dropped[opt] = true
			return nil
		}
		if err := a.place(p, v); err != nil {
			return err
		}
	}

	return nil
}

func (a *assembler) required(p *compiler.Param) error {
	v, ok := a.lookup(p.Name)
	if !ok {
		return &ParamError{Route: a.route.name, Param: p.Name}
	}

	return a.place(p, v)
}

func (a *assembler) render(sb *strings.Builder, nodes []compiler.Node, translate compiler.TranslateFunc) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *compiler.Literal:
			sb.WriteString(n.Text)

		case *compiler.Text:
			text, err := compiler.ResolveText(n.Key, translate)
			if err != nil {
				return err
			}
			sb.WriteString(text)

		case *compiler.Param:
			sb.WriteString(escapePath(a.values[n]))

		case *compiler.Optional:
			if a.dropped[n] {
				continue
			}
			if err := a.render(sb, n.Nodes, translate); err != nil {
				return err
			}

		case *compiler.Wildcard:
		}
	}

	return nil
}

func (a *assembler) query(translate compiler.TranslateFunc) (string, error) {
	var parts []string
	for _, q := range a.route.def.Query() {
		v, ok := a.left[q.Name()]
		if !ok {
			continue
		}
		if err := a.route.ValidateQuery(q, v); err != nil {
			return "", err
		}
		key, err := compiler.ResolveMarkers(q.Key, translate)
		if err != nil {
			return "", err
		}
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(v))
	}

	return strings.Join(parts, "&"), nil
}

// escapePath escapes a path value segment by segment so constraints that
// admit slashes produce readable paths.
func escapePath(value string) string {
	if !strings.Contains(value, "/") {
		return url.PathEscape(value)
	}
	segments := strings.Split(value, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.Join(segments, "/")
}
