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
	"context"
	"time"
)

// Observer is notified after every match and every assembly.
// Implementations must be safe for concurrent use and must not block.
//
// The metrics and tracing packages provide Prometheus and OpenTelemetry
// observers.
type Observer interface {
	OnMatch(ctx context.Context, e MatchEvent)
	OnAssemble(ctx context.Context, e AssembleEvent)
}

// MatchEvent describes one match.
type MatchEvent struct {
	Path     string // Decoded request path
	Method   string
	Locale   string
	Route    string // Matched route name, empty when nothing matched
	Matched  bool
	Err      error
	Start    time.Time
	Duration time.Duration
}

// AssembleEvent describes one assembly.
type AssembleEvent struct {
	Route    string
	URL      string // Empty on error
	Locale   string
	Err      error
	Start    time.Time
	Duration time.Duration
}
