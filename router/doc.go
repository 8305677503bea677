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

// Package router matches request paths against named routes written in a
// compact definition language, and assembles URLs back from route names.
//
// # Definitions
//
// A definition is an optional method list, a path and an optional query
// declaration:
//
//	GET|POST /blog[/:slug[/comments/:page<\d+>]]?sort=<asc|desc>&q
//
//   - :name is a path parameter; :name<re> constrains it (default [^/]+)
//   - [...] is an optional group, groups nest
//   - * matches anything and is left out when assembling
//   - {text} is translated for the locale of the call
//   - ?... restricts the query string to the declared keys; "?" or "?!"
//     alone forbids any query string
//
// # Matching
//
// Routes are tried in registration order. The first route accepting the
// method, the path and, for restricted routes, the query string wins:
//
//	r := router.MustNew()
//	r.Route("post", `/blog/:slug[/comments/:page<\d+>]`)
//
//	m, err := r.Match("/blog/hello", http.MethodGet)
//	// m.Captures: slug="hello", page=null
//
// No match is reported as a nil Match and a nil error.
//
// # Assembly
//
// Assemble is the inverse of Match:
//
//	u, err := r.Assemble("post", map[string]any{"slug": "hello", "page": 2})
//	// "/blog/hello/comments/2"
//
// With WithMatch, captures of an earlier match fill in the parameters that
// are not passed, so links to sibling routes keep the current context.
//
// # HTTP
//
// Router implements http.Handler. Routes registered WithHandler receive
// the request with the match in its context; see MatchFromContext and
// URLFor.
package router
