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

package source

import (
	"context"
	"fmt"
	"os"

	"rivaas.dev/waypoint/config/codec"
)

// Env loads manifest values from environment variables starting with a
// prefix. WAYPOINT_LOG_LEVEL=debug with prefix "WAYPOINT_" sets log.level.
type Env struct {
	prefix  string
	environ func() []string
}

// NewEnv returns a source reading the process environment.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix, environ: os.Environ}
}

// NewEnvFrom returns a source reading the given KEY=value entries.
func NewEnvFrom(prefix string, environ []string) *Env {
	return &Env{prefix: prefix, environ: func() []string { return environ }}
}

// Load decodes the matching variables.
func (e *Env) Load(context.Context) (map[string]any, error) {
	var values map[string]any
	dec := codec.EnvCodec{Prefix: e.prefix}
	if err := dec.Decode(codec.EnvData(e.environ()), &values); err != nil {
		return nil, fmt.Errorf("failed to decode environment variables: %w", err)
	}

	return values, nil
}
