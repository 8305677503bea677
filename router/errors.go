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
	"errors"
	"fmt"
	"net/http"

	"rivaas.dev/waypoint/router/compiler"
	"rivaas.dev/waypoint/router/route"
)

var (
	// ErrRouteNotFound indicates that no route is registered under a name.
	ErrRouteNotFound = errors.New("route not found")

	// ErrNoMatchedRoute indicates that assembly was asked for the matched
	// route without a match to take it from.
	ErrNoMatchedRoute = errors.New("no matched route to assemble")

	// ErrNoRouteMatches indicates that ServeHTTP found no route for a request.
	ErrNoRouteMatches = errors.New("no route matches request")

	// ErrNoHTTPHandler indicates that the matched route has no HTTP handler.
	ErrNoHTTPHandler = errors.New("route has no HTTP handler")

	// ErrInvalidOption indicates an invalid router configuration.
	ErrInvalidOption = errors.New("invalid router option")

	// ErrMissingParameter indicates that a required parameter was not supplied.
	ErrMissingParameter = route.ErrMissingParameter

	// ErrConstraintViolation indicates a value rejected by its constraint.
	ErrConstraintViolation = route.ErrConstraintViolation

	// ErrInvalidPattern indicates a malformed route pattern.
	ErrInvalidPattern = compiler.ErrInvalidPattern

	// ErrTranslationDepth indicates translations that keep producing markers.
	ErrTranslationDepth = compiler.ErrTranslationDepth
)

// RouteError reports an unknown route name.
type RouteError struct {
	Name string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%v: %q", ErrRouteNotFound, e.Name)
}

func (e *RouteError) Unwrap() error {
	return ErrRouteNotFound
}

// Code returns a machine-readable error code.
func (e *RouteError) Code() string {
	return "route_not_found"
}

// Details returns the route name.
func (e *RouteError) Details() any {
	return map[string]string{"route": e.Name}
}

// HTTPStatus returns 500: a missing route name is a programming error.
func (e *RouteError) HTTPStatus() int {
	return http.StatusInternalServerError
}
