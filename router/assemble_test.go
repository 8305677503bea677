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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("contact", "/contact")
	r.Route("help", "/help/:subject")
	r.Route("blog-post", `/blog[/:slug<[a-z-]+>[/comments/:page<\d+>]]`)
	r.Route("blog", `/blog/:page<\d+>`)
	r.Route("asterisk", "/foo*")
	r.Route("query", `/blog?page=<\d+>&limit=&sort&filter`)
	r.Route("same", `/blog/:page?page=<\d+>`)
	r.Route("both", `/blog/:slug?page=<\d+>`)

	tests := []struct {
		name   string
		route  string
		params map[string]any
		want   string
	}{
		{name: "static", route: "contact", want: "/contact"},
		{name: "required", route: "help", params: map[string]any{"subject": "create-new-post"}, want: "/help/create-new-post"},
		{name: "optional outer", route: "blog-post", params: map[string]any{"slug": "new-post"}, want: "/blog/new-post"},
		{name: "optional nested", route: "blog-post", params: map[string]any{"slug": "new-post", "page": 4}, want: "/blog/new-post/comments/4"},
		{name: "optional none", route: "blog-post", want: "/blog"},
		{name: "valid value", route: "blog", params: map[string]any{"page": "4"}, want: "/blog/4"},
		{name: "asterisk", route: "asterisk", want: "/foo"},
		{
			name:   "query string",
			route:  "query",
			params: map[string]any{"page": 3, "limit": 20, "sort": "", "filter": nil},
			want:   "/blog?page=3&limit=20&sort=",
		},
		{name: "same name in path and query", route: "same", params: map[string]any{"page": 30}, want: "/blog/30"},
		{name: "path and query", route: "both", params: map[string]any{"slug": "slug", "page": 2}, want: "/blog/slug?page=2"},
		{name: "bool value", route: "help", params: map[string]any{"subject": true}, want: "/help/true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Assemble(tt.route, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssembleErrors(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("blog", `/blog/:page<[\d]+>`)
	r.Route("blog-optional", `/blog[/:page<\d+>]`)
	r.Route("help", "/help/:subject")
	r.Route("query", `/blog?page=<\d+>`)
	r.Route("broken", "/blog[/:id")

	tests := []struct {
		name   string
		route  string
		params map[string]any
		is     error
	}{
		{name: "invalid required value", route: "blog", params: map[string]any{"page": "a"}, is: ErrConstraintViolation},
		{name: "invalid optional value", route: "blog-optional", params: map[string]any{"page": "a"}, is: ErrConstraintViolation},
		{name: "invalid query value", route: "query", params: map[string]any{"page": "a"}, is: ErrConstraintViolation},
		{name: "missing required", route: "help", is: ErrMissingParameter},
		{name: "unknown route", route: "nope", is: ErrRouteNotFound},
		{name: "no name and no match", route: "", is: ErrNoMatchedRoute},
		{name: "invalid pattern", route: "broken", is: ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Assemble(tt.route, tt.params)
			require.ErrorIs(t, err, tt.is)
			assert.Empty(t, got)
		})
	}
}

func TestAssembleRouteError(t *testing.T) {
	t.Parallel()

	_, err := MustNew().Assemble("help", nil)

	var re *RouteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "help", re.Name)
	assert.Equal(t, "route_not_found", re.Code())
	assert.Equal(t, `route not found: "help"`, re.Error())
}

func TestAssembleUnconvertibleValue(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("help", "/help/:subject")

	_, err := r.Assemble("help", map[string]any{"subject": struct{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "subject"`)
}

func TestAssembleMatchedRoute(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("blog", "/blog[/:page]")
	m, err := r.Match("/blog/3", "GET")
	require.NoError(t, err)
	require.NotNil(t, m)

	got, err := r.Assemble("", nil, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, "/blog/3", got)

	got, err = r.Assemble("", map[string]any{"page": 4}, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, "/blog/4", got)

	got, err = r.Assemble("", map[string]any{"page": nil}, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, "/blog", got, "nil hides the reused capture")
}

func TestAssembleMatchedAsteriskRoute(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("asterisk", "/*")
	m, err := r.Match("/foo/bar", "GET")
	require.NoError(t, err)
	require.NotNil(t, m)

	got, err := r.Assemble("", nil, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, "/", got)
}

func TestAssembleReuse(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.Route("blog-view", "/blog/:slug?page")
	r.Route("blog-comments", "/blog/:slug/comments?page")

	m, err := r.Match("/blog/new-blog-title/comments?page=3", "GET")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "blog-comments", m.Name())

	got, err := r.Assemble("blog-view", nil, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, "/blog/new-blog-title?page=3", got)

	got, err = r.Assemble("blog-view", map[string]any{"slug": "slug"}, WithMatch(m), WithoutReuse())
	require.NoError(t, err)
	assert.Equal(t, "/blog/slug", got)

	_, err = r.Assemble("blog-view", nil, WithMatch(m), WithoutReuse())
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestAssembleTranslation(t *testing.T) {
	t.Parallel()

	r := MustNew(WithTranslator(dutch), WithDefaultLocale("nl-nl"))
	r.Route("blog", `/blog/{page}/:page<\d+>?{order}=`)

	got, err := r.Assemble("blog", map[string]any{"page": "4", "order": "desc"})
	require.NoError(t, err)
	assert.Equal(t, "/blog/pagina/4?sortering=desc", got)

	got, err = r.Assemble("blog", map[string]any{"page": "4", "order": "desc"}, WithAssembleLocale("en"))
	require.NoError(t, err)
	assert.Equal(t, "/blog/page/4?order=desc", got)
}

func TestAssembleUsesMatchLocale(t *testing.T) {
	t.Parallel()

	r := MustNew(WithTranslator(dutch), WithDefaultLocale("en"))
	r.Route("blog", "/{blog}/:id")
	r.Route("blog-query", "/{blog}?{page}=")

	m, err := r.Match("/nieuws/5", "GET", WithLocale("nl"))
	require.NoError(t, err)
	require.NotNil(t, m)

	got, err := r.Assemble("blog-query", map[string]any{"page": 2}, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, "/nieuws?pagina=2", got)

	got, err = r.Assemble("blog", nil, WithMatch(m), WithAssembleLocale("en"))
	require.NoError(t, err)
	assert.Equal(t, "/blog/5", got)
}

func TestAssembleRoundTrip(t *testing.T) {
	t.Parallel()

	r := MustNew(WithTranslator(dutch), WithDefaultLocale("nl"))
	r.Route("post", `GET|POST /{blog}/:slug<[a-z-]+>[/comments/:page<\d+>]?sort=<asc|desc>&q=`)

	params := map[string]any{"slug": "hello-world", "page": 2, "sort": "desc", "q": "go & more"}
	u, err := r.Assemble("post", params)
	require.NoError(t, err)
	assert.Equal(t, "/nieuws/hello-world/comments/2?sort=desc&q=go+%26+more", u)

	m, err := r.Match(u, "POST")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, map[string]string{
		"slug": "hello-world",
		"page": "2",
		"sort": "desc",
		"q":    "go & more",
	}, m.Captures.Values())

	again, err := r.Assemble("", nil, WithMatch(m))
	require.NoError(t, err)
	assert.Equal(t, u, again)
}

func TestAssembleObserver(t *testing.T) {
	t.Parallel()

	obs := &eventRecorder{}
	r := MustNew(WithObserver(obs))
	r.Route("help", "/help/:subject")

	_, _ = r.Assemble("help", map[string]any{"subject": "x"})
	_, _ = r.Assemble("help", nil)

	require.Len(t, obs.assembles, 2)
	assert.Equal(t, "help", obs.assembles[0].Route)
	assert.Equal(t, "/help/x", obs.assembles[0].URL)
	assert.NoError(t, obs.assembles[0].Err)
	assert.ErrorIs(t, obs.assembles[1].Err, ErrMissingParameter)
}
