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

// Package route provides the compiled route record of the router and the
// URL assembler.
//
// A Route couples a unique name with a compiled definition and two opaque
// values, a view and a handler, that the router stores and returns
// unexamined. Routes are created by the router at registration time and
// are never modified afterwards.
//
// # Constraints
//
// Every parameter constraint is anchored as a full-string match. Path
// constraints are case-sensitive, query constraints are case-insensitive.
// The same compiled constraints are used when matching and when
// assembling, so a value accepted by one is accepted by the other.
//
// # Assembly
//
// Assemble walks the same skeleton the matcher renders:
//
//	r := route.New("blog", `/blog[/:slug[/comments/:page<\d+>]]`, nil, nil)
//	r.Assemble(map[string]string{}, nil)              // "/blog"
//	r.Assemble(map[string]string{"slug": "a"}, nil)   // "/blog/a"
//
// Optional groups are resolved inside out. A group is dropped when one of
// its own parameters is missing; a dropped inner group leaves its parent
// intact. Parameters consumed by the path are not emitted again in the
// query string, and only declared query parameters are emitted.
package route
