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
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingParameter indicates that a required parameter was not supplied.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrConstraintViolation indicates that a value does not satisfy its constraint.
	ErrConstraintViolation = errors.New("value not allowed by constraint")
)

// ParamError reports a required path parameter missing during assembly.
type ParamError struct {
	Route string
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v %q for route %q", ErrMissingParameter, e.Param, e.Route)
}

func (e *ParamError) Unwrap() error {
	return ErrMissingParameter
}

// Code returns a machine-readable error code.
func (e *ParamError) Code() string {
	return "missing_parameter"
}

// Details returns the route and parameter names.
func (e *ParamError) Details() any {
	return map[string]string{"route": e.Route, "param": e.Param}
}

// HTTPStatus returns 500: assembly happens while producing a response.
func (e *ParamError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// ConstraintError reports a value rejected by its constraint.
type ConstraintError struct {
	Route      string // Route name
	Param      string // Parameter name
	Value      string // Rejected value
	Constraint string // Constraint body
	Query      bool   // True for query string parameters
}

func (e *ConstraintError) Error() string {
	kind := "parameter"
	if e.Query {
		kind = "query string parameter"
	}

	return fmt.Sprintf("value %q for %s %q is not allowed by constraint %q for route %q",
		e.Value, kind, e.Param, e.Constraint, e.Route)
}

func (e *ConstraintError) Unwrap() error {
	return ErrConstraintViolation
}

// Code returns a machine-readable error code.
func (e *ConstraintError) Code() string {
	return "constraint_violation"
}

// Details returns the rejected value and the constraint.
func (e *ConstraintError) Details() any {
	return map[string]any{
		"route":      e.Route,
		"param":      e.Param,
		"value":      e.Value,
		"constraint": e.Constraint,
		"query":      e.Query,
	}
}

// HTTPStatus returns 500: assembly happens while producing a response.
func (e *ConstraintError) HTTPStatus() int {
	return http.StatusInternalServerError
}
