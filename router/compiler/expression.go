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
	"regexp"
	"strconv"
	"strings"
)

// Value is one captured path parameter. Valid is false when the parameter
// sits in an optional group that did not take part in the match.
type Value struct {
	Name  string
	Value string
	Valid bool
}

// Expression is a definition skeleton rendered as an anchored regular
// expression for one locale.
type Expression struct {
	re     *regexp.Regexp
	names  []string
	groups []group
}

// group ties a capture group of the expression to a parameter.
type group struct {
	param int // index into names
	index int // subexpression index
}

type exprBuilder struct {
	def       *Definition
	translate TranslateFunc
	sb        strings.Builder
	names     map[string]int
	order     []string
	groups    []group
}

// NewExpression renders def as a match expression. Translatable literals
// are resolved through translate.
func NewExpression(def *Definition, translate TranslateFunc) (*Expression, error) {
	nodes, err := def.Nodes()
	if err != nil {
		return nil, err
	}

	b := &exprBuilder{def: def, translate: translate, names: make(map[string]int)}
	b.sb.WriteByte('^')
	if err := b.write(nodes); err != nil {
		return nil, err
	}
	b.sb.WriteByte('$')

	re, err := regexp.Compile(b.sb.String())
	if err != nil {
		return nil, &SyntaxError{Pattern: def.pattern, Offset: -1, Msg: "cannot compile match expression", Err: err}
	}
	for i := range b.groups {
		b.groups[i].index = re.SubexpIndex(groupName(i))
	}

	return &Expression{re: re, names: b.order, groups: b.groups}, nil
}

func (b *exprBuilder) write(nodes []Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Literal:
			b.sb.WriteString(regexp.QuoteMeta(n.Text))

		case *Text:
			text, err := ResolveText(n.Key, b.translate)
			if err != nil {
				return err
			}
			b.sb.WriteString(regexp.QuoteMeta(text))

		case *Wildcard:
			b.sb.WriteString("(.*)")

		case *Optional:
			b.sb.WriteString("(?:")
			if err := b.write(n.Nodes); err != nil {
				return err
			}
			b.sb.WriteString(")?")

		case *Param:
			constraint := b.def.PathConstraint(n.Name)
			if _, err := regexp.Compile(constraint); err != nil {
				return &SyntaxError{
					Pattern: b.def.pattern,
					Offset:  -1,
					Msg:     fmt.Sprintf("constraint %q of parameter %q", constraint, n.Name),
					Err:     err,
				}
			}

			pos, ok := b.names[n.Name]
			if !ok {
				pos = len(b.order)
				b.names[n.Name] = pos
				b.order = append(b.order, n.Name)
			}
			fmt.Fprintf(&b.sb, "(?P<%s>%s)", groupName(len(b.groups)), constraint)
			b.groups = append(b.groups, group{param: pos})
		}
	}

	return nil
}

// groupName names capture groups independently of parameter names so a
// parameter may appear more than once.
func groupName(i int) string {
	return "wp" + strconv.Itoa(i) + "_"
}

// Match matches path against the expression and returns one Value per
// parameter, in order of first appearance. When a parameter appears more
// than once, the first participating occurrence wins.
func (e *Expression) Match(path string) ([]Value, bool) {
	m := e.re.FindStringSubmatchIndex(path)
	if m == nil {
		return nil, false
	}

	values := make([]Value, len(e.names))
	for i, name := range e.names {
		values[i].Name = name
	}
	for _, g := range e.groups {
		start, end := m[2*g.index], m[2*g.index+1]
		if start < 0 || values[g.param].Valid {
			continue
		}
		values[g.param].Value = path[start:end]
		values[g.param].Valid = true
	}

	return values, true
}

// Names returns the parameter names the expression captures.
func (e *Expression) Names() []string {
	return append([]string(nil), e.names...)
}

// String returns the regular expression source.
func (e *Expression) String() string {
	return e.re.String()
}
