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

// Package errors formats router and task errors as HTTP responses.
//
// Two formatters are provided:
//   - RFC9457: problem details (application/problem+json)
//   - Simple: a flat JSON object (application/json)
//
// Errors control the response through optional interfaces. ErrorType
// chooses the status, ErrorCode adds a machine-readable code and
// ErrorDetails adds structured details. The waypoint router errors
// implement all three:
//
//	m, err := rt.Match(target, method)
//	if err != nil {
//		errors.Write(w, req, errors.NewRFC9457(""), err)
//		return
//	}
//
// Write sets the headers, the status and encodes the body as JSON.
package errors
