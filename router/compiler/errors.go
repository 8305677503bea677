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
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern indicates that a route pattern or one of its
	// constraints cannot be interpreted.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrTranslationDepth indicates that resolving translatable literals did
	// not reach a text without markers within MaxTextDepth rounds.
	ErrTranslationDepth = errors.New("translation nesting too deep")
)

// SyntaxError describes a problem with a route pattern.
// It wraps ErrInvalidPattern unless Err says otherwise.
type SyntaxError struct {
	Pattern string // Pattern being interpreted
	Offset  int    // Byte offset of the problem, -1 when not positional
	Msg     string // Description of the problem
	Err     error  // Underlying error (regexp compile errors, for example)
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if e.Err != nil && !errors.Is(e.Err, ErrInvalidPattern) && !errors.Is(e.Err, ErrTranslationDepth) {
		msg += ": " + e.Err.Error()
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%v %q at offset %d: %s", ErrInvalidPattern, e.Pattern, e.Offset, msg)
	}

	return fmt.Sprintf("%v %q: %s", ErrInvalidPattern, e.Pattern, msg)
}

// Unwrap returns ErrInvalidPattern together with the underlying error.
func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidPattern}
	}

	return []error{ErrInvalidPattern, e.Err}
}

// Code returns a machine-readable error code.
func (e *SyntaxError) Code() string {
	return "invalid_pattern"
}
