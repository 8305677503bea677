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

package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"rivaas.dev/waypoint/router"
	"rivaas.dev/waypoint/task"
)

// Provider names a metrics provider.
type Provider string

const (
	// PrometheusProvider uses the Prometheus exporter (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider uses the OTLP HTTP exporter.
	OTLPProvider Provider = "otlp"
	// StdoutProvider uses the stdout exporter.
	StdoutProvider Provider = "stdout"
)

const meterName = "rivaas.dev/waypoint"

// DefaultDurationBuckets are the histogram boundaries, in seconds, of
// match and assembly durations.
var DefaultDurationBuckets = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}

var (
	_ router.Observer = (*Recorder)(nil)
	_ task.Observer   = (*Recorder)(nil)
)

// Recorder records router and task events. All methods are safe for
// concurrent use.
type Recorder struct {
	meter         metric.Meter
	meterProvider metric.MeterProvider
	sdkProvider   *sdkmetric.MeterProvider // Nil for caller managed providers
	handler       http.Handler
	registry      *promclient.Registry
	logger        *slog.Logger

	matches          metric.Int64Counter
	matchDuration    metric.Float64Histogram
	assemblies       metric.Int64Counter
	assembleDuration metric.Float64Histogram
	parses           metric.Int64Counter
	errorCount       metric.Int64Counter

	provider            Provider
	providerSetCount    int
	customMeterProvider bool
	registerGlobal      bool
	otlpEndpoint        string
	exportInterval      time.Duration
	durationBuckets     []float64
	serviceNameAttr     attribute.KeyValue
	serviceName         string
}

// New returns a Recorder configured with opts.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		provider:        PrometheusProvider,
		exportInterval:  30 * time.Second,
		durationBuckets: DefaultDurationBuckets,
		serviceName:     "waypoint",
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	r.serviceNameAttr = attribute.String("service.name", r.serviceName)

	if err := r.initializeProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Recorder) validate() error {
	var errs []error
	if r.providerSetCount > 1 {
		errs = append(errs, errors.New("multiple providers configured; choose one of WithPrometheus, WithOTLP or WithStdout"))
	}
	if r.customMeterProvider && r.meterProvider == nil {
		errs = append(errs, errors.New("meter provider cannot be nil"))
	}
	if r.exportInterval <= 0 {
		errs = append(errs, errors.New("export interval must be positive"))
	}
	if r.serviceName == "" {
		errs = append(errs, errors.New("service name cannot be empty"))
	}
	if r.logger == nil {
		errs = append(errs, errors.New("logger cannot be nil"))
	}

	return errors.Join(errs...)
}

func (r *Recorder) initializeMetrics() error {
	var err error
	if r.matches, err = r.meter.Int64Counter("waypoint.route.matches",
		metric.WithDescription("Number of route matches by outcome"),
		metric.WithUnit("{match}"),
	); err != nil {
		return fmt.Errorf("failed to create match counter: %w", err)
	}
	if r.matchDuration, err = r.meter.Float64Histogram("waypoint.route.match.duration",
		metric.WithDescription("Duration of route matching"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	); err != nil {
		return fmt.Errorf("failed to create match duration histogram: %w", err)
	}
	if r.assemblies, err = r.meter.Int64Counter("waypoint.route.assemblies",
		metric.WithDescription("Number of URL assemblies by outcome"),
		metric.WithUnit("{assembly}"),
	); err != nil {
		return fmt.Errorf("failed to create assembly counter: %w", err)
	}
	if r.assembleDuration, err = r.meter.Float64Histogram("waypoint.route.assemble.duration",
		metric.WithDescription("Duration of URL assembly"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	); err != nil {
		return fmt.Errorf("failed to create assembly duration histogram: %w", err)
	}
	if r.parses, err = r.meter.Int64Counter("waypoint.task.parses",
		metric.WithDescription("Number of task parses by outcome"),
		metric.WithUnit("{parse}"),
	); err != nil {
		return fmt.Errorf("failed to create parse counter: %w", err)
	}
	if r.errorCount, err = r.meter.Int64Counter("waypoint.errors",
		metric.WithDescription("Number of failed operations"),
		metric.WithUnit("{error}"),
	); err != nil {
		return fmt.Errorf("failed to create error counter: %w", err)
	}

	return nil
}

func outcome(matched bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case matched:
		return "matched"
	default:
		return "unmatched"
	}
}

// OnMatch records a route match.
func (r *Recorder) OnMatch(ctx context.Context, e router.MatchEvent) {
	attrs := metric.WithAttributes(
		r.serviceNameAttr,
		attribute.String("route", e.Route),
		attribute.String("method", e.Method),
		attribute.String("outcome", outcome(e.Matched, e.Err)),
	)
	r.matches.Add(ctx, 1, attrs)
	r.matchDuration.Record(ctx, e.Duration.Seconds(), attrs)
	if e.Err != nil {
		r.recordError(ctx, "match")
	}
}

// OnAssemble records a URL assembly.
func (r *Recorder) OnAssemble(ctx context.Context, e router.AssembleEvent) {
	result := "ok"
	if e.Err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		r.serviceNameAttr,
		attribute.String("route", e.Route),
		attribute.String("outcome", result),
	)
	r.assemblies.Add(ctx, 1, attrs)
	r.assembleDuration.Record(ctx, e.Duration.Seconds(), attrs)
	if e.Err != nil {
		r.recordError(ctx, "assemble")
	}
}

// OnParse records a task parse.
func (r *Recorder) OnParse(ctx context.Context, e task.ParseEvent) {
	r.parses.Add(ctx, 1, metric.WithAttributes(
		r.serviceNameAttr,
		attribute.String("task", e.Task),
		attribute.String("outcome", outcome(e.Matched, e.Err)),
	))
	if e.Err != nil {
		r.recordError(ctx, "parse")
	}
}

func (r *Recorder) recordError(ctx context.Context, operation string) {
	r.errorCount.Add(ctx, 1, metric.WithAttributes(r.serviceNameAttr, attribute.String("operation", operation)))
}

// Handler returns the Prometheus scrape handler. It answers 404 for other
// providers.
func (r *Recorder) Handler() http.Handler {
	if r.handler == nil {
		return http.NotFoundHandler()
	}

	return r.handler
}

// Registry returns the Prometheus registry of the Prometheus provider, or
// nil.
func (r *Recorder) Registry() *promclient.Registry {
	return r.registry
}

// Shutdown flushes and stops a provider created by New. Caller managed
// providers are left alone.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.sdkProvider == nil {
		return nil
	}
	if err := r.sdkProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down meter provider: %w", err)
	}

	return nil
}
