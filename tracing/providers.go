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
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

func (o *Observer) initializeProvider(ctx context.Context) error {
	if o.customTracerProvider {
		o.logger.Debug("using caller managed tracer provider")
		return o.finishProvider(o.tracerProvider)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(o.serviceName),
			semconv.ServiceVersion(o.serviceVersion),
		)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.sampleRate))),
	}

	switch o.provider {
	case NoopProvider:
	case StdoutProvider:
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	case OTLPProvider:
		var gopts []otlptracegrpc.Option
		if o.otlpEndpoint != "" {
			gopts = append(gopts, otlptracegrpc.WithEndpoint(o.otlpEndpoint))
		}
		if o.otlpInsecure {
			gopts = append(gopts, otlptracegrpc.WithInsecure())
		}
		exporter, err := otlptracegrpc.New(ctx, gopts...)
		if err != nil {
			return fmt.Errorf("failed to create OTLP gRPC exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	case OTLPHTTPProvider:
		exporter, err := otlptracehttp.New(ctx, otlpHTTPOptions(o.otlpEndpoint)...)
		if err != nil {
			return fmt.Errorf("failed to create OTLP HTTP exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	default:
		return fmt.Errorf("unsupported tracing provider: %s", o.provider)
	}

	o.sdkProvider = sdktrace.NewTracerProvider(opts...)
	return o.finishProvider(o.sdkProvider)
}

func (o *Observer) finishProvider(tp trace.TracerProvider) error {
	o.tracerProvider = tp
	o.tracer = tp.Tracer(tracerName)
	if o.registerGlobal {
		o.logger.Debug("setting global OpenTelemetry tracer provider", "provider", o.provider)
		otel.SetTracerProvider(tp)
	}

	return nil
}

func otlpHTTPOptions(endpoint string) []otlptracehttp.Option {
	if endpoint == "" {
		return nil
	}

	insecure := false
	if rest, ok := strings.CutPrefix(endpoint, "http://"); ok {
		endpoint = rest
		insecure = true
	} else {
		endpoint = strings.TrimPrefix(endpoint, "https://")
	}
	endpoint, _, _ = strings.Cut(endpoint, "/")

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	return opts
}
