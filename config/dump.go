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
	"fmt"
	"io"

	"rivaas.dev/waypoint/config/codec"
)

// Encode encodes m with the codec registered under t.
func Encode(m *Manifest, t codec.Type) ([]byte, error) {
	enc, err := codec.Get(t)
	if err != nil {
		return nil, NewError("manifest", "encode", err)
	}
	data, err := enc.Encode(m)
	if err != nil {
		return nil, NewError("manifest", "encode", fmt.Errorf("failed to encode values: %w", err))
	}

	return data, nil
}

// Dump writes m to w in the format t.
func Dump(w io.Writer, m *Manifest, t codec.Type) error {
	data, err := Encode(m, t)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
