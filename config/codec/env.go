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

package codec

import (
	"errors"
	"fmt"
	"strings"
)

// TypeEnv identifies the environment codec.
const TypeEnv Type = "env"

// ErrEncodeUnsupported indicates a decode-only codec.
var ErrEncodeUnsupported = errors.New("encoding not supported")

func init() {
	Register(TypeEnv, EnvCodec{})
}

// EnvCodec decodes KEY=value lines into a nested map. Keys are lowered and
// split on underscores, so LOG_LEVEL=debug becomes {"log": {"level":
// "debug"}}. Only keys starting with Prefix are kept, with the prefix
// removed.
type EnvCodec struct {
	Prefix string
}

// Encode is not supported.
func (EnvCodec) Encode(any) ([]byte, error) {
	return nil, fmt.Errorf("env codec: %w", ErrEncodeUnsupported)
}

// Decode decodes data into v, which must be a *map[string]any.
func (c EnvCodec) Decode(data []byte, v any) error {
	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("env codec: expected *map[string]any, got %T", v)
	}

	conf := make(map[string]any)
	for line := range strings.SplitSeq(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || !strings.HasPrefix(key, c.Prefix) {
			continue
		}

		var parts []string
		for p := range strings.SplitSeq(strings.ToLower(strings.TrimPrefix(key, c.Prefix)), "_") {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}

		current := conf
		for _, p := range parts[:len(parts)-1] {
			next, ok := current[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[p] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = strings.TrimSpace(value)
	}
	*ptr = conf

	return nil
}

// EnvData joins environment entries, as returned by os.Environ, into the
// input EnvCodec decodes.
func EnvData(environ []string) []byte {
	return []byte(strings.Join(environ, "\n"))
}
