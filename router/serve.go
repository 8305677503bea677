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
	"fmt"
	"net/http"

	riverrors "rivaas.dev/waypoint/errors"
)

// ServeHTTP matches req and serves the handler of the matched route with
// the match stored in the request context.
//
// No match is answered with 404, a route without an HTTP handler with 501
// and a matching error with 500, all written through the configured
// formatter.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	m, err := r.MatchRequest(req)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	if m == nil {
		r.writeError(w, req, riverrors.WithStatus(
			fmt.Errorf("%w: %s %s", ErrNoRouteMatches, req.Method, req.URL.Path),
			http.StatusNotFound,
		))
		return
	}

	var h http.Handler
	switch handler := m.Route.Handler().(type) {
	case http.Handler:
		h = handler
	case func(http.ResponseWriter, *http.Request):
		h = http.HandlerFunc(handler)
	default:
		r.writeError(w, req, riverrors.WithStatus(
			fmt.Errorf("%w: %q", ErrNoHTTPHandler, m.Name()),
			http.StatusNotImplemented,
		))
		return
	}

	h.ServeHTTP(w, req.WithContext(NewContext(req.Context(), m)))
}

func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	if werr := riverrors.Write(w, req, r.formatter, err); werr != nil {
		r.logger.Error("failed to write error response", "error", werr, "cause", err)
	}
}
