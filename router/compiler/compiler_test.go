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

package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompile tests definition compilation with various patterns.
func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		raw             string
		wantMethods     []string
		wantPattern     string
		wantConstraints map[string]string
		wantQuery       []QueryParam
		wantRestricted  bool
	}{
		{
			name:            "method prefix and constraint",
			raw:             `GET|POST /blog/:page<\d+>`,
			wantMethods:     []string{"GET", "POST"},
			wantPattern:     "/blog/:page",
			wantConstraints: map[string]string{"page": `\d+`},
		},
		{
			name:            "default method and constraint",
			raw:             "/blog/:subject",
			wantMethods:     []string{"GET"},
			wantPattern:     "/blog/:subject",
			wantConstraints: map[string]string{"subject": DefaultPathConstraint},
		},
		{
			name:            "lower case methods with spaces",
			raw:             "post | delete /blog",
			wantMethods:     []string{"POST", "DELETE"},
			wantPattern:     "/blog",
			wantConstraints: map[string]string{},
		},
		{
			name:            "query declaration",
			raw:             `/products?page=<\d+>&search=&latest`,
			wantMethods:     []string{"GET"},
			wantPattern:     "/products",
			wantConstraints: map[string]string{},
			wantQuery: []QueryParam{
				{Key: "page", Constraint: `\d+`, Kind: QueryValue},
				{Key: "search", Constraint: DefaultQueryConstraint, Kind: QueryValue},
				{Key: "latest", Constraint: DefaultQueryConstraint, Kind: QueryPresence},
			},
			wantRestricted: true,
		},
		{
			name:            "ampersand inside constraint",
			raw:             `/range?span=<\d+&\d+>&unit`,
			wantMethods:     []string{"GET"},
			wantPattern:     "/range",
			wantConstraints: map[string]string{},
			wantQuery: []QueryParam{
				{Key: "span", Constraint: `\d+&\d+`, Kind: QueryValue},
				{Key: "unit", Constraint: DefaultQueryConstraint, Kind: QueryPresence},
			},
			wantRestricted: true,
		},
		{
			name:            "query not allowed",
			raw:             "/blog?!",
			wantMethods:     []string{"GET"},
			wantPattern:     "/blog",
			wantConstraints: map[string]string{},
			wantRestricted:  true,
		},
		{
			name:            "empty query",
			raw:             "/blog?",
			wantMethods:     []string{"GET"},
			wantPattern:     "/blog",
			wantConstraints: map[string]string{},
			wantRestricted:  true,
		},
		{
			name:        "nested optional constraints",
			raw:         `/blog[/:slug<[a-z-]+>[/comments/:page<\d+>]]`,
			wantMethods: []string{"GET"},
			wantPattern: "/blog[/:slug[/comments/:page]]",
			wantConstraints: map[string]string{
				"slug": `[a-z-]+`,
				"page": `\d+`,
			},
		},
		{
			name:            "explicit constraint survives later bare use",
			raw:             `/a/:id<\d+>/b/:id`,
			wantMethods:     []string{"GET"},
			wantPattern:     "/a/:id/b/:id",
			wantConstraints: map[string]string{"id": `\d+`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := Compile(tt.raw)
			require.NoError(t, def.Err())

			assert.Equal(t, tt.raw, def.Raw())
			assert.Equal(t, tt.wantMethods, def.Methods())
			assert.Equal(t, tt.wantPattern, def.Pattern())
			assert.Equal(t, tt.wantConstraints, def.PathConstraints())
			assert.Equal(t, tt.wantQuery, def.Query())
			assert.Equal(t, tt.wantRestricted, def.Restricted())
		})
	}
}

// TestCompileDeferredErrors tests that malformed definitions compile and
// report their problem through Err.
func TestCompileDeferredErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "unclosed group", raw: "/blog[/:slug"},
		{name: "stray closing bracket", raw: "/blog/:slug]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := Compile(tt.raw)
			require.Error(t, def.Err())
			require.ErrorIs(t, def.Err(), ErrInvalidPattern)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, def.Err(), &syntaxErr)

			_, err := def.Nodes()
			require.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

// TestCompileQueryError tests that a malformed query declaration is held
// apart from the path skeleton.
func TestCompileQueryError(t *testing.T) {
	t.Parallel()

	def := Compile("/blog?page=5")
	require.ErrorIs(t, def.Err(), ErrInvalidPattern)
	require.ErrorIs(t, def.QueryErr(), ErrInvalidPattern)
	assert.Equal(t, def.QueryErr(), def.Err())

	nodes, err := def.Nodes()
	require.NoError(t, err)
	assert.Equal(t, []Node{&Literal{Text: "/blog"}}, nodes)

	both := Compile("/blog[?page=5")
	_, err = both.Nodes()
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.NotEqual(t, both.QueryErr(), both.Err())

	assert.NoError(t, Compile("/blog?page=<\\d+>").QueryErr())
}

func TestCompileIsIdempotent(t *testing.T) {
	t.Parallel()

	raws := []string{
		`GET|POST /blog/:page<\d+>`,
		`/blog[/:slug<[a-z-]+>[/comments/:page<\d+>]]?sort&page=<\d+>`,
		"/foo*",
		"/blog/{page}/:page?{order}=",
		"/blog[/:slug",
	}

	for _, raw := range raws {
		assert.Equal(t, Compile(raw), Compile(raw), raw)
	}
}

func TestDefinitionAllowsMethod(t *testing.T) {
	t.Parallel()

	def := Compile("POST|DELETE /blog")

	assert.True(t, def.AllowsMethod("POST"))
	assert.True(t, def.AllowsMethod("delete"))
	assert.False(t, def.AllowsMethod("GET"))
}

func TestDefinitionParams(t *testing.T) {
	t.Parallel()

	def := Compile(`/blog/:id/comments[/:commentId[/:id]]?page=&limit=`)

	assert.Equal(t, []string{"id", "commentId"}, def.Params())
	assert.Equal(t, DefaultPathConstraint, def.PathConstraint("unknown"))
}

func TestQueryParamName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "order", QueryParam{Key: "{order}"}.Name())
	assert.Equal(t, "page", QueryParam{Key: "page"}.Name())
	assert.Equal(t, "value", QueryValue.String())
	assert.Equal(t, "presence", QueryPresence.String())
}
