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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/waypoint/config/codec"
)

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest Manifest
		want     []string
	}{
		{
			name: "valid",
			manifest: Manifest{
				Routes: []RouteSpec{{Name: "blog", Pattern: "/blog"}, {Name: "home", Pattern: "/"}},
				Tasks:  []TaskSpec{{Name: "import", Command: "import <id>"}},
			},
		},
		{
			name:     "empty",
			manifest: Manifest{},
		},
		{
			name: "blank fields",
			manifest: Manifest{
				Routes: []RouteSpec{{Name: "  ", Pattern: "/blog"}, {Name: "home"}},
				Tasks:  []TaskSpec{{Command: "run"}, {Name: "noop", Command: " "}},
			},
			want: []string{
				"routes[0]: name is empty",
				"routes[1]: pattern is empty",
				"tasks[0]: name is empty",
				"tasks[1]: command is empty",
			},
		},
		{
			name: "duplicate names",
			manifest: Manifest{
				Routes: []RouteSpec{{Name: "blog", Pattern: "/blog"}, {Name: "blog", Pattern: "/news"}},
				Tasks:  []TaskSpec{{Name: "run", Command: "run"}, {Name: "run", Command: "run <id>"}},
			},
			want: []string{"routes: duplicate name", "tasks: duplicate name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.manifest.Validate()
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidManifest)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoadRejectsDuplicateRoutesAcrossFiles(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(),
		WithContent([]byte("routes:\n  - {name: blog, pattern: /blog}\n"), codec.TypeYAML),
		WithContent([]byte("routes:\n  - {name: blog, pattern: /news}\n"), codec.TypeYAML),
	)
	require.ErrorIs(t, err, ErrInvalidManifest)
	assert.Contains(t, err.Error(), "routes: duplicate name")
}
