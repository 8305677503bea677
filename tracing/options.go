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

package tracing

import (
	"log/slog"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Provider names a tracing provider.
type Provider string

const (
	// NoopProvider creates spans without exporting them (default).
	NoopProvider Provider = "noop"
	// StdoutProvider prints spans to stdout.
	StdoutProvider Provider = "stdout"
	// OTLPProvider exports spans over OTLP gRPC.
	OTLPProvider Provider = "otlp"
	// OTLPHTTPProvider exports spans over OTLP HTTP.
	OTLPHTTPProvider Provider = "otlp-http"
)

// Option configures an Observer.
type Option func(*Observer)

// WithTracerProvider uses a caller managed [trace.TracerProvider].
// Provider options are ignored and Shutdown leaves the provider running.
//
// Example:
//
//	sr := tracetest.NewSpanRecorder()
//	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
//	obs := tracing.MustNew(ctx, tracing.WithTracerProvider(tp))
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Observer) {
		o.tracerProvider = tp
		o.customTracerProvider = true
	}
}

// WithGlobalTracerProvider registers the tracer provider as the global
// OpenTelemetry tracer provider.
func WithGlobalTracerProvider() Option {
	return func(o *Observer) {
		o.registerGlobal = true
	}
}

// WithPropagator sets the propagator Middleware extracts trace context
// with. Default is W3C trace context plus baggage.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(o *Observer) {
		if p != nil {
			o.propagator = p
		}
	}
}

// WithServiceName sets the service.name resource attribute.
func WithServiceName(name string) Option {
	return func(o *Observer) {
		o.serviceName = name
	}
}

// WithServiceVersion sets the service.version resource attribute.
func WithServiceVersion(version string) Option {
	return func(o *Observer) {
		o.serviceVersion = version
	}
}

// WithSampleRate sets the ratio of sampled root spans, between 0 and 1.
func WithSampleRate(rate float64) Option {
	return func(o *Observer) {
		o.sampleRate = rate
	}
}

// WithLogger sets the logger for provider lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Observer) {
		o.logger = logger
	}
}

// WithNoop selects the no-op provider.
func WithNoop() Option {
	return func(o *Observer) {
		o.provider = NoopProvider
		o.providerSetCount++
	}
}

// WithStdout selects the stdout provider.
func WithStdout() Option {
	return func(o *Observer) {
		o.provider = StdoutProvider
		o.providerSetCount++
	}
}

// WithOTLP selects the OTLP gRPC provider.
func WithOTLP(endpoint string, insecure bool) Option {
	return func(o *Observer) {
		o.provider = OTLPProvider
		o.otlpEndpoint = endpoint
		o.otlpInsecure = insecure
		o.providerSetCount++
	}
}

// WithOTLPHTTP selects the OTLP HTTP provider. An http:// endpoint is
// used without TLS.
func WithOTLPHTTP(endpoint string) Option {
	return func(o *Observer) {
		o.provider = OTLPHTTPProvider
		o.otlpEndpoint = endpoint
		o.providerSetCount++
	}
}
