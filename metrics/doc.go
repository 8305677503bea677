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

// Package metrics records waypoint matching, assembly and task parsing as
// OpenTelemetry metrics.
//
// A [Recorder] implements router.Observer and task.Observer:
//
//	recorder := metrics.MustNew(metrics.WithServiceName("blog"))
//	defer recorder.Shutdown(context.Background())
//
//	r := router.MustNew(router.WithObserver(recorder))
//	tasks := task.MustNew(task.WithObserver(recorder))
//
//	http.Handle("/metrics", recorder.Handler())
//
// # Providers
//
// Three providers are supported:
//   - [PrometheusProvider] (default): exposes metrics through [Recorder.Handler]
//   - [OTLPProvider]: sends metrics to an OTLP collector over HTTP
//   - [StdoutProvider]: prints metrics to stdout
//
// [WithMeterProvider] uses a caller managed provider instead.
//
// # Global State
//
// The package does not set the global OpenTelemetry meter provider unless
// [WithGlobalMeterProvider] is given.
package metrics
