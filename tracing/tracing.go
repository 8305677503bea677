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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/waypoint/router"
	"rivaas.dev/waypoint/task"
)

const tracerName = "rivaas.dev/waypoint"

var (
	_ router.Observer = (*Observer)(nil)
	_ task.Observer   = (*Observer)(nil)
)

// Observer turns router and task events into spans. Safe for concurrent
// use.
type Observer struct {
	tracer         trace.Tracer
	tracerProvider trace.TracerProvider
	sdkProvider    *sdktrace.TracerProvider // Nil for caller managed providers
	propagator     propagation.TextMapPropagator
	logger         *slog.Logger

	provider             Provider
	providerSetCount     int
	customTracerProvider bool
	registerGlobal       bool
	otlpEndpoint         string
	otlpInsecure         bool
	sampleRate           float64
	serviceName          string
	serviceVersion       string
}

// New returns an Observer configured with opts. ctx bounds the setup of
// OTLP exporters.
func New(ctx context.Context, opts ...Option) (*Observer, error) {
	o := &Observer{
		provider:       NoopProvider,
		propagator:     propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
		logger:         slog.New(slog.DiscardHandler),
		sampleRate:     1,
		serviceName:    "waypoint",
		serviceVersion: "dev",
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := o.initializeProvider(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	return o, nil
}

// MustNew is like New but panics on error.
func MustNew(ctx context.Context, opts ...Option) *Observer {
	o, err := New(ctx, opts...)
	if err != nil {
		panic(err)
	}

	return o
}

func (o *Observer) validate() error {
	var errs []error
	if o.providerSetCount > 1 {
		errs = append(errs, errors.New("multiple providers configured; choose one of WithNoop, WithStdout, WithOTLP or WithOTLPHTTP"))
	}
	if o.customTracerProvider && o.tracerProvider == nil {
		errs = append(errs, errors.New("tracer provider cannot be nil"))
	}
	if o.sampleRate < 0 || o.sampleRate > 1 {
		errs = append(errs, fmt.Errorf("sample rate must be between 0 and 1, got %v", o.sampleRate))
	}
	if o.serviceName == "" {
		errs = append(errs, errors.New("service name cannot be empty"))
	}
	if o.logger == nil {
		errs = append(errs, errors.New("logger cannot be nil"))
	}

	return errors.Join(errs...)
}

// OnMatch records a "waypoint.match" span.
func (o *Observer) OnMatch(ctx context.Context, e router.MatchEvent) {
	_, span := o.tracer.Start(ctx, "waypoint.match",
		trace.WithTimestamp(e.Start),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("url.path", e.Path),
			attribute.String("http.request.method", e.Method),
			attribute.String("waypoint.locale", e.Locale),
			attribute.Bool("waypoint.matched", e.Matched),
		),
	)
	if e.Route != "" {
		span.SetAttributes(attribute.String("waypoint.route", e.Route))
	}
	finish(span, e.Err)
	span.End(trace.WithTimestamp(e.Start.Add(e.Duration)))
}

// OnAssemble records a "waypoint.assemble" span.
func (o *Observer) OnAssemble(ctx context.Context, e router.AssembleEvent) {
	_, span := o.tracer.Start(ctx, "waypoint.assemble",
		trace.WithTimestamp(e.Start),
		trace.WithAttributes(
			attribute.String("waypoint.route", e.Route),
			attribute.String("waypoint.locale", e.Locale),
		),
	)
	if e.URL != "" {
		span.SetAttributes(attribute.String("url.full", e.URL))
	}
	finish(span, e.Err)
	span.End(trace.WithTimestamp(e.Start.Add(e.Duration)))
}

// OnParse records a "waypoint.parse" span.
func (o *Observer) OnParse(ctx context.Context, e task.ParseEvent) {
	_, span := o.tracer.Start(ctx, "waypoint.parse",
		trace.WithTimestamp(e.Start),
		trace.WithAttributes(
			attribute.StringSlice("waypoint.args", e.Args),
			attribute.Bool("waypoint.matched", e.Matched),
		),
	)
	if e.Task != "" {
		span.SetAttributes(attribute.String("waypoint.task", e.Task))
	}
	finish(span, e.Err)
	span.End(trace.WithTimestamp(e.Start.Add(e.Duration)))
}

func finish(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Middleware starts a server span for every request, continuing the trace
// found in the request headers.
func (o *Observer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := o.propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))
		ctx, span := o.tracer.Start(ctx, req.Method+" "+req.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.path", req.URL.Path),
			),
		)
		defer span.End()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, req.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.response.status_code", sw.status))
		if sw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.status))
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// TracerProvider returns the provider spans are created with.
func (o *Observer) TracerProvider() trace.TracerProvider {
	return o.tracerProvider
}

// Shutdown flushes and stops a provider created by New. Caller managed
// providers are left alone.
func (o *Observer) Shutdown(ctx context.Context) error {
	if o.sdkProvider == nil {
		return nil
	}
	if err := o.sdkProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down tracer provider: %w", err)
	}

	return nil
}
