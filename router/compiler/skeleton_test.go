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

func TestParseSkeleton(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    []Node
	}{
		{
			name:    "static",
			pattern: "/contact",
			want:    []Node{&Literal{Text: "/contact"}},
		},
		{
			name:    "nested optional groups",
			pattern: "/blog[/:slug[/comments/:page]]",
			want: []Node{
				&Literal{Text: "/blog"},
				&Optional{Nodes: []Node{
					&Literal{Text: "/"},
					&Param{Name: "slug"},
					&Optional{Nodes: []Node{
						&Literal{Text: "/comments/"},
						&Param{Name: "page"},
					}},
				}},
			},
		},
		{
			name:    "wildcard and translatable text",
			pattern: "/{news}/*",
			want: []Node{
				&Literal{Text: "/"},
				&Text{Key: "news"},
				&Literal{Text: "/"},
				&Wildcard{},
			},
		},
		{
			name:    "marker look-alikes stay literal",
			pattern: "/a{}/b{c/:1/d:",
			want:    []Node{&Literal{Text: "/a{}/b{c/:1/d:"}},
		},
		{
			name:    "parameter name stops at non word character",
			pattern: "/:id.json",
			want: []Node{
				&Literal{Text: "/"},
				&Param{Name: "id"},
				&Literal{Text: ".json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := parseSkeleton(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nodes)
		})
	}
}

func TestParseSkeletonErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern    string
		wantOffset int
	}{
		{pattern: "[/a", wantOffset: 0},
		{pattern: "/a[/b[/c]", wantOffset: 2},
		{pattern: "/a]", wantOffset: 2},
	}

	for _, tt := range tests {
		_, err := parseSkeleton(tt.pattern)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, tt.pattern)
		assert.Equal(t, tt.wantOffset, syntaxErr.Offset, tt.pattern)
		assert.Contains(t, err.Error(), "at offset")
	}
}

func TestParamNames(t *testing.T) {
	t.Parallel()

	nodes, err := parseSkeleton("/:a[/:b[/:a/:c]]/:d")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, paramNames(nodes))
}
