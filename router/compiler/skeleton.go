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

import "strings"

// Node is one element of a compiled path skeleton.
type Node interface {
	node()
}

// Literal is static path text.
type Literal struct {
	Text string
}

// Param is a named parameter placeholder (:name).
type Param struct {
	Name string
}

// Optional is a bracketed group ([...]) that is matched or assembled only
// when every parameter directly inside it can be resolved.
type Optional struct {
	Nodes []Node
}

// Wildcard matches any text (*) and contributes nothing when assembling.
type Wildcard struct{}

// Text is a translatable literal ({key}).
type Text struct {
	Key string
}

func (*Literal) node()  {}
func (*Param) node()    {}
func (*Optional) node() {}
func (*Wildcard) node() {}
func (*Text) node()     {}

// skeletonParser parses a path skeleton with one token of lookahead.
// Nesting depth of optional groups is the recursion depth of parse.
type skeletonParser struct {
	src string
	pos int
}

func parseSkeleton(pattern string) ([]Node, error) {
	p := &skeletonParser{src: pattern}

	return p.parse(0)
}

func (p *skeletonParser) parse(depth int) ([]Node, error) {
	var (
		nodes []Node
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, &Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '[':
			flush()
			start := p.pos
			p.pos++
			children, err := p.parse(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) {
				return nil, &SyntaxError{Pattern: p.src, Offset: start, Msg: "unclosed optional group"}
			}
			p.pos++ // ]
			nodes = append(nodes, &Optional{Nodes: children})

		case c == ']':
			if depth == 0 {
				return nil, &SyntaxError{Pattern: p.src, Offset: p.pos, Msg: "unexpected ] outside optional group"}
			}
			flush()

			return nodes, nil

		case c == '*':
			flush()
			nodes = append(nodes, &Wildcard{})
			p.pos++

		case c == '{':
			end := closingBrace(p.src, p.pos)
			if end < 0 {
				lit.WriteByte(c)
				p.pos++

				continue
			}
			flush()
			nodes = append(nodes, &Text{Key: p.src[p.pos+1 : end]})
			p.pos = end + 1

		case c == ':' && p.pos+1 < len(p.src) && isNameStart(p.src[p.pos+1]):
			flush()
			end := p.pos + 2
			for end < len(p.src) && isNameChar(p.src[end]) {
				end++
			}
			nodes = append(nodes, &Param{Name: p.src[p.pos+1 : end]})
			p.pos = end

		default:
			lit.WriteByte(c)
			p.pos++
		}
	}
	flush()

	return nodes, nil
}

// closingBrace returns the index of the } closing the marker opened at
// open, or -1 when the marker is empty, nested or never closed.
func closingBrace(s string, open int) int {
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '}':
			if i == open+1 {
				return -1
			}

			return i
		case '{':
			return -1
		}
	}

	return -1
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '_'
}

// paramNames returns the distinct parameter names of nodes in order of
// first appearance.
func paramNames(nodes []Node) []string {
	var names []string
	seen := make(map[string]bool)
	walkParams(nodes, func(p *Param) {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	})

	return names
}

func walkParams(nodes []Node, fn func(*Param)) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Param:
			fn(n)
		case *Optional:
			walkParams(n.Nodes, fn)
		}
	}
}
