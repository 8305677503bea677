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
	"context"
	"fmt"
	"io"
	"strings"
)

// HandlerFunc runs a parsed task.
type HandlerFunc func(ctx context.Context, p *ParsedTask) error

// Usage writes the listing of registered tasks to w. When argv holds
// arguments besides the program name, the listing starts by saying that
// no task matched them.
func (r *Registry) Usage(w io.Writer, argv []string) error {
	var b strings.Builder
	b.WriteString(r.banner)
	b.WriteString("\n\n")

	if len(argv) > 1 {
		if r.noColor {
			b.WriteString("No task found for command.\n\n")
		} else {
			b.WriteString("\033[31mNo task found for command.\033[0m\n\n")
		}
	}

	if len(r.tasks) == 0 {
		b.WriteString("No tasks available.\n")
	} else {
		b.WriteString("Tasks (command <required> [<optional>]):\n")
		for _, t := range r.tasks {
			b.WriteString(" - ")
			b.WriteString(t.command)
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write usage: %w", err)
	}

	return nil
}

// Run parses argv and calls the HandlerFunc of the matched task. When no
// task matches, Run writes the usage listing to w and returns nil, nil.
func (r *Registry) Run(ctx context.Context, w io.Writer, argv []string) (*ParsedTask, error) {
	p, err := r.ParseContext(ctx, argv)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, r.Usage(w, argv)
	}

	var h HandlerFunc
	switch handler := p.Task.Handler().(type) {
	case HandlerFunc:
		h = handler
	case func(context.Context, *ParsedTask) error:
		h = handler
	default:
		return p, nil
	}
	if err := h(ctx, p); err != nil {
		return p, fmt.Errorf("run task %q: %w", p.Task.Name(), err)
	}

	return p, nil
}
