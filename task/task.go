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

package task

import (
	"fmt"
	"log/slog"
	"slices"
)

// defaultBanner is the first line of the usage listing.
const defaultBanner = "Waypoint Console"

// Task is a registered task.
type Task struct {
	name    string
	command string
	tokens  []Token
	script  string
	handler any
}

// Name returns the unique task name.
func (t *Task) Name() string { return t.name }

// Command returns the command as registered.
func (t *Task) Command() string { return t.command }

// Tokens returns the compiled command tokens.
func (t *Task) Tokens() []Token { return slices.Clone(t.tokens) }

// Script returns the script attached to the task.
func (t *Task) Script() string { return t.script }

// Handler returns the handler attached to the task.
func (t *Task) Handler() any { return t.handler }

// Err returns the first malformed token of the command, if any.
func (t *Task) Err() error {
	for _, tok := range t.tokens {
		if tok.Kind == Malformed {
			return &TokenError{Task: t.name, Token: tok.Value}
		}
	}

	return nil
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithObserver adds observers notified after every parse.
func WithObserver(observers ...Observer) Option {
	return func(r *Registry) {
		for _, o := range observers {
			if o != nil {
				r.observers = append(r.observers, o)
			}
		}
	}
}

// WithBanner sets the first line of the usage listing.
func WithBanner(banner string) Option {
	return func(r *Registry) {
		r.banner = banner
	}
}

// WithoutColor makes Usage write plain text without ANSI color sequences.
func WithoutColor() Option {
	return func(r *Registry) {
		r.noColor = true
	}
}

// Registry holds tasks in registration order.
//
// Tasks are registered during setup from a single goroutine. Once
// registration is done, Parse and Usage are safe for concurrent use.
type Registry struct {
	tasks     []*Task
	index     map[string]int
	logger    *slog.Logger
	observers []Observer
	banner    string
	noColor   bool
}

// New returns a Registry configured with opts.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		index:  make(map[string]int),
		logger: slog.New(slog.DiscardHandler),
		banner: defaultBanner,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		return nil, fmt.Errorf("task registry configuration validation failed: %w: logger is nil", ErrInvalidOption)
	}

	return r, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// TaskOption configures a task at registration.
type TaskOption func(*Task)

// WithScript attaches a script to the task.
func WithScript(script string) TaskOption {
	return func(t *Task) {
		t.script = script
	}
}

// WithHandler attaches a handler to the task. A HandlerFunc or a
// func(context.Context, *ParsedTask) error is called by Run; any other
// value is stored for the caller.
func WithHandler(handler any) TaskOption {
	return func(t *Task) {
		t.handler = handler
	}
}

// Task registers command under name and returns the task. Registering a
// name again replaces the earlier task but keeps its position.
//
// A malformed command is logged; Parse returns its TokenError when the
// task is reached.
func (r *Registry) Task(name, command string, opts ...TaskOption) *Task {
	t := &Task{name: name, command: command, tokens: Compile(command)}
	for _, opt := range opts {
		opt(t)
	}

	if i, ok := r.index[name]; ok {
		r.tasks[i] = t
	} else {
		r.index[name] = len(r.tasks)
		r.tasks = append(r.tasks, t)
	}
	r.logger.Debug("task registered", "name", name, "command", command)
	if err := t.Err(); err != nil {
		r.logger.Warn("task command is invalid", "name", name, "command", command, "error", err)
	}

	return t
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (*Task, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}

	return r.tasks[i], true
}

// Get is like Lookup but returns a *NotFoundError for unknown names.
func (r *Registry) Get(name string) (*Task, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	return t, nil
}

// Tasks returns the registered tasks in registration order.
func (r *Registry) Tasks() []*Task {
	return slices.Clone(r.tasks)
}
