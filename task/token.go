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

package task

import "strings"

// TokenKind is the kind of a command token.
type TokenKind int

const (
	// Word must equal its argument.
	Word TokenKind = iota
	// Required captures a non-empty argument.
	Required
	// Optional captures its argument when one is given.
	Optional
	// Malformed is a token of no known shape.
	Malformed
)

func (k TokenKind) String() string {
	switch k {
	case Word:
		return "word"
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return "malformed"
	}
}

// Token is one compiled command token. Value is the word for Word tokens,
// the parameter name for Required and Optional tokens and the raw token
// for Malformed ones.
type Token struct {
	Kind  TokenKind
	Value string
}

func (t Token) String() string {
	switch t.Kind {
	case Required:
		return "<" + t.Value + ">"
	case Optional:
		return "[<" + t.Value + ">]"
	default:
		return t.Value
	}
}

// Compile splits command on whitespace and classifies each token.
func Compile(command string) []Token {
	fields := strings.Fields(command)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = compileToken(f)
	}

	return tokens
}

func compileToken(s string) Token {
	if isIdent(s) {
		return Token{Kind: Word, Value: s}
	}
	if name, ok := strings.CutPrefix(s, "[<"); ok {
		if name, ok = strings.CutSuffix(name, ">]"); ok && isIdent(name) {
			return Token{Kind: Optional, Value: name}
		}
	}
	if name, ok := strings.CutPrefix(s, "<"); ok {
		if name, ok = strings.CutSuffix(name, ">"); ok && isIdent(name) {
			return Token{Kind: Required, Value: name}
		}
	}

	return Token{Kind: Malformed, Value: s}
}

// isIdent reports whether s is an ASCII letter followed by letters,
// digits or underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '_'):
		default:
			return false
		}
	}

	return true
}
