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
	"log/slog"
	"net/http"
	"slices"
	"time"
)

// AccessLogOption configures AccessLog.
type AccessLogOption func(*accessLogConfig)

type accessLogConfig struct {
	excludePaths  []string
	slowThreshold time.Duration
	errorsOnly    bool
}

// WithExcludePaths skips logging for the given paths.
func WithExcludePaths(paths ...string) AccessLogOption {
	return func(c *accessLogConfig) {
		c.excludePaths = append(c.excludePaths, paths...)
	}
}

// WithSlowThreshold logs requests slower than d at warn level.
func WithSlowThreshold(d time.Duration) AccessLogOption {
	return func(c *accessLogConfig) {
		c.slowThreshold = d
	}
}

// WithErrorsOnly logs only responses with a status of 400 or more.
func WithErrorsOnly() AccessLogOption {
	return func(c *accessLogConfig) {
		c.errorsOnly = true
	}
}

// AccessLog returns middleware that logs one record per request.
func AccessLog(logger *slog.Logger, opts ...AccessLogOption) Middleware {
	cfg := &accessLogConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if slices.Contains(cfg.excludePaths, req.URL.Path) {
				next.ServeHTTP(w, req)
				return
			}

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, req)
			elapsed := time.Since(start)

			status := rw.statusCode()
			if cfg.errorsOnly && status < http.StatusBadRequest {
				return
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest, cfg.slowThreshold > 0 && elapsed > cfg.slowThreshold:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", elapsed),
			}
			if id := RequestIDFrom(req.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			logger.LogAttrs(req.Context(), level, "request", attrs...)
		})
	}
}
