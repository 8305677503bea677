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

package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	riverrors "rivaas.dev/waypoint/errors"
)

// ErrPanic is the error written for a recovered panic.
var ErrPanic = errors.New("internal server error")

// RecoveryOption configures Recovery.
type RecoveryOption func(*recoveryConfig)

type recoveryConfig struct {
	logger    *slog.Logger
	formatter riverrors.Formatter
	stackSize int
}

// WithRecoveryLogger sets the logger panics are reported to.
func WithRecoveryLogger(logger *slog.Logger) RecoveryOption {
	return func(c *recoveryConfig) {
		c.logger = logger
	}
}

// WithRecoveryFormatter sets the formatter of the 500 response. Default is
// RFC 9457 problem details.
func WithRecoveryFormatter(f riverrors.Formatter) RecoveryOption {
	return func(c *recoveryConfig) {
		c.formatter = f
	}
}

// WithStackSize limits the logged stack trace, in bytes. Zero disables
// stack traces. Default is 4 KiB.
func WithStackSize(size int) RecoveryOption {
	return func(c *recoveryConfig) {
		c.stackSize = size
	}
}

// Recovery returns middleware that turns panics into 500 responses. The
// panic is logged and recorded on the span of the request, if any.
func Recovery(opts ...RecoveryOption) Middleware {
	cfg := &recoveryConfig{
		logger:    slog.New(slog.DiscardHandler),
		formatter: riverrors.NewRFC9457(""),
		stackSize: 4 << 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				if span := trace.SpanFromContext(req.Context()); span.SpanContext().IsValid() {
					span.SetStatus(codes.Error, "panic recovered")
					span.SetAttributes(
						attribute.Bool("exception.escaped", true),
						attribute.String("exception.type", fmt.Sprintf("%T", v)),
						attribute.String("exception.message", fmt.Sprint(v)),
					)
				}

				attrs := []any{"panic", v, "method", req.Method, "path", req.URL.Path}
				if id := RequestIDFrom(req.Context()); id != "" {
					attrs = append(attrs, "request_id", id)
				}
				if cfg.stackSize > 0 {
					stack := debug.Stack()
					if len(stack) > cfg.stackSize {
						stack = stack[:cfg.stackSize]
					}
					attrs = append(attrs, "stack", string(stack))
				}
				cfg.logger.Error("panic recovered", attrs...)

				err := riverrors.WithStatus(fmt.Errorf("%w: %v", ErrPanic, v), http.StatusInternalServerError)
				if werr := riverrors.Write(w, req, cfg.formatter, err); werr != nil {
					cfg.logger.Error("failed to write error response", "error", werr)
				}
			}()

			next.ServeHTTP(w, req)
		})
	}
}
