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

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format names a log output format.
type Format string

const (
	// FormatJSON outputs structured JSON logs.
	FormatJSON Format = "json"
	// FormatText outputs key=value text logs.
	FormatText Format = "text"
	// FormatConsole outputs human-readable colored logs.
	FormatConsole Format = "console"
)

var (
	// ErrInvalidFormat indicates an unknown log format.
	ErrInvalidFormat = errors.New("invalid log format")
	// ErrInvalidLevel indicates an unknown log level.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrNilWriter indicates a nil output writer.
	ErrNilWriter = errors.New("output writer cannot be nil")
)

// ParseFormat parses "json", "text" or "console", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText, FormatConsole:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// ParseLevel parses "debug", "info", "warn", "warning" or "error",
// ignoring case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

type config struct {
	format    Format
	level     slog.Level
	output    io.Writer
	addSource bool
	noColor   bool
	attrs     []any
}

// Option configures New.
type Option func(*config)

// WithFormat sets the output format. Default is FormatText.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithLevel sets the minimum level. Default is info.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithOutput sets the writer. Default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithSource adds the file and line of the call to each record.
func WithSource(enabled bool) Option {
	return func(c *config) { c.addSource = enabled }
}

// WithoutColor disables ANSI colors of the console format.
func WithoutColor() Option {
	return func(c *config) { c.noColor = true }
}

// WithAttrs adds attributes to every record.
func WithAttrs(args ...any) Option {
	return func(c *config) { c.attrs = append(c.attrs, args...) }
}

// New returns a logger configured by opts.
func New(opts ...Option) (*slog.Logger, error) {
	cfg := &config{
		format: FormatText,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.output == nil {
		return nil, ErrNilWriter
	}

	hopts := &slog.HandlerOptions{Level: cfg.level, AddSource: cfg.addSource}

	var h slog.Handler
	switch cfg.format {
	case FormatJSON:
		h = slog.NewJSONHandler(cfg.output, hopts)
	case FormatText:
		h = slog.NewTextHandler(cfg.output, hopts)
	case FormatConsole:
		h = newConsoleHandler(cfg.output, hopts, !cfg.noColor)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.format)
	}

	logger := slog.New(h)
	if len(cfg.attrs) > 0 {
		logger = logger.With(cfg.attrs...)
	}

	return logger, nil
}

// Parse builds a logger from format and level names.
func Parse(format, level string, opts ...Option) (*slog.Logger, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return New(append([]Option{WithFormat(f), WithLevel(l)}, opts...)...)
}

// Discard returns a logger dropping every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
