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

// Package tracing records waypoint matching, assembly and task parsing as
// OpenTelemetry spans.
//
// An [Observer] implements router.Observer and task.Observer. Each event
// becomes a span carrying the start time and duration measured by the
// router, parented to the span in the event context:
//
//	obs, err := tracing.New(ctx, tracing.WithOTLP("collector:4317"))
//	if err != nil {
//	    return err
//	}
//	defer obs.Shutdown(context.Background())
//
//	r := router.MustNew(router.WithObserver(obs))
//	http.ListenAndServe(":8080", obs.Middleware(r))
//
// [Observer.Middleware] extracts W3C trace context from incoming requests
// and starts a server span, so match spans join the caller's trace.
//
// The package does not set the global tracer provider unless
// [WithGlobalTracerProvider] is given.
package tracing
