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
	"path/filepath"
	"strings"
	"sync"
)

// ErrUnknownCodec indicates that no codec is registered for a type or
// file extension.
var ErrUnknownCodec = errors.New("unknown codec")

var registry = struct {
	sync.RWMutex
	codecs map[Type]Codec
}{codecs: make(map[Type]Codec)}

// extensions maps file extensions to codec types.
var extensions = map[string]Type{
	".yaml": TypeYAML,
	".yml":  TypeYAML,
	".toml": TypeTOML,
	".json": TypeJSON,
}

// Register registers c under t, replacing any earlier codec.
func Register(t Type, c Codec) {
	registry.Lock()
	defer registry.Unlock()
	registry.codecs[t] = c
}

// Get returns the codec registered under t.
func Get(t Type) (Codec, error) {
	registry.RLock()
	defer registry.RUnlock()

	c, ok := registry.codecs[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, t)
	}

	return c, nil
}

// TypeForFile returns the codec type for the extension of path.
func TypeForFile(path string) (Type, error) {
	ext := strings.ToLower(filepath.Ext(path))
	t, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: file extension %q", ErrUnknownCodec, ext)
	}

	return t, nil
}

// ForFile returns the codec for the extension of path.
func ForFile(path string) (Codec, error) {
	t, err := TypeForFile(path)
	if err != nil {
		return nil, err
	}

	return Get(t)
}
