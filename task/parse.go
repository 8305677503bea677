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
	"time"
)

// ParsedTask is the result of a successful parse.
type ParsedTask struct {
	Task *Task
	// Params holds the supplied parameters. Optional parameters that were
	// not given are absent.
	Params map[string]string
}

// Observer is notified after every parse. Implementations must be safe
// for concurrent use and must not block.
type Observer interface {
	OnParse(ctx context.Context, e ParseEvent)
}

// ParseEvent describes one parse.
type ParseEvent struct {
	Args     []string // Arguments without the program name
	Task     string   // Matched task name, empty when nothing matched
	Matched  bool
	Err      error
	Start    time.Time
	Duration time.Duration
}

// Parse matches argv, whose first element is the program name, against
// the registered tasks in registration order.
//
// A nil ParsedTask with a nil error means no task matched. The only error
// is a *TokenError from a malformed task reached along the way.
func (r *Registry) Parse(argv []string) (*ParsedTask, error) {
	return r.ParseContext(context.Background(), argv)
}

// ParseContext is like Parse and passes ctx to observers.
func (r *Registry) ParseContext(ctx context.Context, argv []string) (*ParsedTask, error) {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	start := time.Now()
	p, err := r.parse(args)

	event := ParseEvent{
		Args:     args,
		Matched:  p != nil,
		Err:      err,
		Start:    start,
		Duration: time.Since(start),
	}
	switch {
	case err != nil:
		r.logger.Error("task parsing failed", "args", args, "error", err)
	case p == nil:
		r.logger.Debug("no task matched", "args", args)
	default:
		event.Task = p.Task.Name()
	}
	for _, o := range r.observers {
		o.OnParse(ctx, event)
	}

	return p, err
}

func (r *Registry) parse(args []string) (*ParsedTask, error) {
	for _, t := range r.tasks {
		params, ok, err := t.accept(args)
		if err != nil {
			return nil, err
		}
		if ok {
			return &ParsedTask{Task: t, Params: params}, nil
		}
	}

	return nil, nil
}

func (t *Task) accept(args []string) (map[string]string, bool, error) {
	if len(args) > len(t.tokens) {
		return nil, false, nil
	}

	params := make(map[string]string)
	for i, tok := range t.tokens {
		var arg string
		if i < len(args) {
			arg = args[i]
		}

		switch tok.Kind {
		case Word:
			if i >= len(args) || arg != tok.Value {
				return nil, false, nil
			}
		case Required:
			if arg == "" {
				return nil, false, nil
			}
			params[tok.Value] = arg
		case Optional:
			if arg != "" {
				params[tok.Value] = arg
			}
		default:
			return nil, false, &TokenError{Task: t.name, Token: tok.Value}
		}
	}

	return params, true, nil
}
