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
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type requestIDKey struct{}

// DefaultRequestIDHeader is the header request IDs are read from and
// written to.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestIDOption configures RequestID.
type RequestIDOption func(*requestIDConfig)

type requestIDConfig struct {
	header        string
	generator     func() string
	allowClientID bool
}

// WithHeader sets the request ID header.
func WithHeader(name string) RequestIDOption {
	return func(c *requestIDConfig) {
		c.header = name
	}
}

// WithGenerator sets the function generating new IDs. Default is a
// random UUID.
func WithGenerator(gen func() string) RequestIDOption {
	return func(c *requestIDConfig) {
		c.generator = gen
	}
}

// WithAllowClientID controls whether an ID sent by the client is kept.
// Default is true.
func WithAllowClientID(allow bool) RequestIDOption {
	return func(c *requestIDConfig) {
		c.allowClientID = allow
	}
}

// ULID generates lexically sortable IDs, for use with WithGenerator.
func ULID() string {
	return ulid.Make().String()
}

// RequestID returns middleware that gives every request an ID. The ID is
// set on the response header and stored in the request context.
func RequestID(opts ...RequestIDOption) Middleware {
	cfg := &requestIDConfig{
		header:        DefaultRequestIDHeader,
		generator:     uuid.NewString,
		allowClientID: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			var id string
			if cfg.allowClientID {
				id = req.Header.Get(cfg.header)
			}
			if id == "" {
				id = cfg.generator()
			}

			w.Header().Set(cfg.header, id)
			next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), requestIDKey{}, id)))
		})
	}
}

// RequestIDFrom returns the request ID stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
