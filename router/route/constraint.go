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
	"fmt"
	"regexp"

	"rivaas.dev/waypoint/router/compiler"
)

type constraint struct {
	re  *regexp.Regexp
	err error
}

// anchor turns a constraint body into a full-string match expression.
func anchor(body string, foldCase bool) string {
	expr := "^(?:" + body + ")$"
	if foldCase {
		expr = "(?i)" + expr
	}

	return expr
}

func (r *Route) compiled(cache map[string]constraint, key, body string, foldCase bool) (*regexp.Regexp, error) {
	r.mu.RLock()
	c, ok := cache[key]
	r.mu.RUnlock()
	if ok {
		return c.re, c.err
	}

	re, err := regexp.Compile(anchor(body, foldCase))
	if err != nil {
		err = &compiler.SyntaxError{
			Pattern: r.def.Raw(),
			Offset:  -1,
			Msg:     fmt.Sprintf("constraint %q of parameter %q", body, key),
			Err:     err,
		}
	}

	r.mu.Lock()
	cache[key] = constraint{re: re, err: err}
	r.mu.Unlock()

	return re, err
}

// ValidatePath checks value against the constraint of path parameter
// name. Path constraints are case-sensitive.
func (r *Route) ValidatePath(name, value string) error {
	body := r.def.PathConstraint(name)
	re, err := r.compiled(r.pathRes, name, body, false)
	if err != nil {
		return err
	}
	if !re.MatchString(value) {
		return &ConstraintError{Route: r.name, Param: name, Value: value, Constraint: body}
	}

	return nil
}

// ValidateQuery checks value against the constraint of query parameter q.
// Query constraints are case-insensitive.
func (r *Route) ValidateQuery(q compiler.QueryParam, value string) error {
	re, err := r.compiled(r.queryRes, q.Key, q.Constraint, true)
	if err != nil {
		return err
	}
	if !re.MatchString(value) {
		return &ConstraintError{Route: r.name, Param: q.Name(), Value: value, Constraint: q.Constraint, Query: true}
	}

	return nil
}
