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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	riverrors "rivaas.dev/waypoint/errors"
)

func TestServeHTTP(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("post", `/blog/:slug[/comments/:page<\d+>]`, WithHandler(func(w http.ResponseWriter, req *http.Request) {
		m, ok := MatchFromContext(req.Context())
		if !ok {
			http.Error(w, "no match", http.StatusInternalServerError)
			return
		}
		next, err := r.URLFor(req, "", map[string]any{"page": 2})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "%s %s %s", m.Name(), m.Captures.Value("slug"), next)
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/hello", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "post hello /blog/hello/comments/2", rec.Body.String())
}

func TestServeHTTPHandler(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("health", "GET /health", WithHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServeHTTPNotFound(t *testing.T) {
	t.Parallel()

	r := MustNew(WithFormatter(&riverrors.RFC9457{DisableErrorID: true}))
	r.Route("health", "GET /health")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no route matches request: POST /health", body["detail"])
	assert.Equal(t, "/health", body["instance"])
}

func TestServeHTTPNoHandler(t *testing.T) {
	t.Parallel()

	r := MustNew(WithFormatter(riverrors.NewSimple()))
	r.Route("view-only", "/page", WithView("page.html"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.JSONEq(t, `{"error":"route has no HTTP handler: \"view-only\""}`, rec.Body.String())
}

func TestServeHTTPInvalidPattern(t *testing.T) {
	t.Parallel()

	r := MustNew(WithFormatter(riverrors.NewSimple()))
	r.Route("broken", "/blog[/:id")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_pattern", body["code"])
}

func TestServeHTTPQueryDeclarationErrorIsolated(t *testing.T) {
	t.Parallel()

	r := MustNew(WithFormatter(riverrors.NewSimple()))
	r.Route("feed", "/feed?page=abc")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMatchFromContext(t *testing.T) {
	t.Parallel()

	_, ok := MatchFromContext(t.Context())
	assert.False(t, ok)

	m := &Match{}
	got, ok := MatchFromContext(NewContext(t.Context(), m))
	assert.True(t, ok)
	assert.Same(t, m, got)

	_, ok = MatchFromContext(NewContext(t.Context(), nil))
	assert.False(t, ok)
}

func TestURLForWithoutMatch(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("help", "/help/:subject")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	u, err := r.URLFor(req, "help", map[string]any{"subject": "routing"})
	require.NoError(t, err)
	assert.Equal(t, "/help/routing", u)

	_, err = r.URLFor(req, "", nil)
	require.ErrorIs(t, err, ErrNoMatchedRoute)
}
