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

package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/waypoint/config/codec"
)

// LoadFiles loads every file matching the glob pattern into a new
// catalog. Each file holds the texts of one locale and is named after it:
// nl-nl.yaml, nl_BE.json, fr.toml.
func LoadFiles(pattern string) (*Catalog, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("translation pattern %q: %w", pattern, err)
	}

	c := NewCatalog()
	for _, path := range paths {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadFile adds the texts of one translation file. The locale is the
// file name without its extension; the format is chosen by the extension.
func (c *Catalog) LoadFile(path string) error {
	name := filepath.Base(path)
	tag := strings.TrimSuffix(name, filepath.Ext(name))

	dec, err := codec.ForFile(path)
	if err != nil {
		return fmt.Errorf("translation file %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("translation file: %w", err)
	}

	var raw map[string]any
	if err := dec.Decode(data, &raw); err != nil {
		return fmt.Errorf("translation file %s: %w", path, err)
	}

	texts := make(map[string]string, len(raw))
	for text, v := range raw {
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("translation file %s: text %q: %w", path, text, err)
		}
		texts[text] = s
	}

	if err := c.Add(tag, texts); err != nil {
		return fmt.Errorf("translation file %s: %w", path, err)
	}

	return nil
}
