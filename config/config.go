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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"

	"rivaas.dev/waypoint/config/codec"
	"rivaas.dev/waypoint/config/source"
)

// EnvPrefix is the prefix of environment variables that override
// manifest values.
const EnvPrefix = "WAYPOINT_"

const (
	defaultLogFormat = "text"
	defaultLogLevel  = "info"
)

// Manifest is a decoded waypoint manifest.
type Manifest struct {
	Locale       string      `config:"locale" json:"locale,omitempty" yaml:"locale,omitempty" toml:"locale,omitempty"`
	Translations string      `config:"translations" json:"translations,omitempty" yaml:"translations,omitempty" toml:"translations,omitempty"`
	Log          Log         `config:"log" json:"log" yaml:"log" toml:"log"`
	Routes       []RouteSpec `config:"routes" json:"routes,omitempty" yaml:"routes,omitempty" toml:"routes,omitempty" validate:"unique=Name,dive"`
	Tasks        []TaskSpec  `config:"tasks" json:"tasks,omitempty" yaml:"tasks,omitempty" toml:"tasks,omitempty" validate:"unique=Name,dive"`
}

// Log holds the logger settings.
type Log struct {
	Format string `config:"format" json:"format" yaml:"format" toml:"format"` // text or json
	Level  string `config:"level" json:"level" yaml:"level" toml:"level"`
}

// RouteSpec declares one route.
type RouteSpec struct {
	Name    string `config:"name" json:"name" yaml:"name" toml:"name" validate:"notblank"`
	Pattern string `config:"pattern" json:"pattern" yaml:"pattern" toml:"pattern" validate:"notblank"`
	View    string `config:"view" json:"view,omitempty" yaml:"view,omitempty" toml:"view,omitempty"`
}

// TaskSpec declares one task.
type TaskSpec struct {
	Name    string `config:"name" json:"name" yaml:"name" toml:"name" validate:"notblank"`
	Command string `config:"command" json:"command" yaml:"command" toml:"command" validate:"notblank"`
	Script  string `config:"script" json:"script,omitempty" yaml:"script,omitempty" toml:"script,omitempty"`
}

// Option configures Load.
type Option func(l *loader) error

type named struct {
	name string
	src  Source
}

type loader struct {
	sources []named
	baseDir string
}

// WithSource adds a source.
func WithSource(src Source) Option {
	return func(l *loader) error {
		if src == nil {
			return errors.New("source cannot be nil")
		}
		l.sources = append(l.sources, named{name: fmt.Sprintf("source[%d]", len(l.sources)), src: src})
		return nil
	}
}

// WithFile adds a manifest file; the format follows its extension. The
// directory of the first file is the base for a relative translations
// pattern.
func WithFile(path string) Option {
	return func(l *loader) error {
		dec, err := codec.ForFile(path)
		if err != nil {
			return NewError(path, "load", err)
		}
		if l.baseDir == "" {
			l.baseDir = filepath.Dir(path)
		}
		l.sources = append(l.sources, named{name: path, src: source.NewFile(path, dec)})
		return nil
	}
}

// WithContent adds in-memory manifest content of the given type.
func WithContent(data []byte, t codec.Type) Option {
	return func(l *loader) error {
		dec, err := codec.Get(t)
		if err != nil {
			return err
		}
		l.sources = append(l.sources, named{
			name: fmt.Sprintf("content[%d]", len(l.sources)),
			src:  source.NewFileContent(data, dec),
		})
		return nil
	}
}

// WithEnv adds the process environment variables starting with prefix.
func WithEnv(prefix string) Option {
	return func(l *loader) error {
		l.sources = append(l.sources, named{name: "env", src: source.NewEnv(prefix)})
		return nil
	}
}

// Load merges the configured sources and decodes the result.
func Load(ctx context.Context, opts ...Option) (*Manifest, error) {
	l := &loader{}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	values, err := l.merge(ctx)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := decode(values, m); err != nil {
		return nil, NewError("manifest", "decode", err)
	}
	if m.Log.Format == "" {
		m.Log.Format = defaultLogFormat
	}
	if m.Log.Level == "" {
		m.Log.Level = defaultLogLevel
	}
	if m.Translations != "" && l.baseDir != "" && !filepath.IsAbs(m.Translations) {
		m.Translations = filepath.Join(l.baseDir, m.Translations)
	}
	if err := m.Validate(); err != nil {
		return nil, NewError("manifest", "validate", err)
	}

	return m, nil
}

// LoadFiles loads the given manifest files followed by the WAYPOINT_
// environment variables.
func LoadFiles(ctx context.Context, paths ...string) (*Manifest, error) {
	opts := make([]Option, 0, len(paths)+1)
	for _, p := range paths {
		opts = append(opts, WithFile(p))
	}
	opts = append(opts, WithEnv(EnvPrefix))

	return Load(ctx, opts...)
}

func (l *loader) merge(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)
	for _, s := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, err := s.src.Load(ctx)
		if err != nil {
			return nil, NewError(s.name, "load", err)
		}
		normalized, _ := normalize(values).(map[string]any)
		if normalized == nil {
			continue
		}
		if err := mergo.Merge(&merged, normalized, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return nil, NewError(s.name, "merge", err)
		}
	}

	return merged, nil
}

// normalize lowers map keys and turns typed slices and maps produced by
// the codecs into []any and map[string]any so sources merge uniformly.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[strings.ToLower(k)] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[strings.ToLower(fmt.Sprint(k))] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}

func decode(values map[string]any, m *Manifest) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           m,
	})
	if err != nil {
		return err
	}

	return dec.Decode(values)
}
