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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseRecorder struct {
	mu     sync.Mutex
	events []ParseEvent
}

func (p *parseRecorder) OnParse(_ context.Context, e ParseEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tokens := Compile("import  feed <id> [<limit>] <bad [x] a-b")
	assert.Equal(t, []Token{
		{Kind: Word, Value: "import"},
		{Kind: Word, Value: "feed"},
		{Kind: Required, Value: "id"},
		{Kind: Optional, Value: "limit"},
		{Kind: Malformed, Value: "<bad"},
		{Kind: Malformed, Value: "[x]"},
		{Kind: Malformed, Value: "a-b"},
	}, tokens)

	assert.Equal(t, "[<limit>]", tokens[3].String())
	assert.Equal(t, "<id>", tokens[2].String())
	assert.Equal(t, "optional", Optional.String())
	assert.Equal(t, "malformed", Malformed.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tasks := MustNew()
	tasks.Task("import", "import feed <id> [<limit>]")

	tests := []struct {
		name string
		argv []string
		want map[string]string
	}{
		{name: "missing required", argv: []string{"imp", "import", "feed"}},
		{name: "required", argv: []string{"imp", "import", "feed", "5"}, want: map[string]string{"id": "5"}},
		{name: "optional", argv: []string{"imp", "import", "feed", "5", "10"}, want: map[string]string{"id": "5", "limit": "10"}},
		{name: "too many", argv: []string{"imp", "import", "feed", "5", "10", "x"}},
		{name: "wrong word", argv: []string{"imp", "export", "feed", "5"}},
		{name: "empty required", argv: []string{"imp", "import", "feed", ""}},
		{name: "no arguments", argv: []string{"imp"}},
		{name: "empty argv", argv: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := tasks.Parse(tt.argv)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, "import", p.Task.Name())
			assert.Equal(t, tt.want, p.Params)
		})
	}
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	tasks := MustNew()
	tasks.Task("queue-all", "process queue")
	tasks.Task("queue", "process queue [<limit>]")

	p, err := tasks.Parse([]string{"app", "process", "queue"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "queue-all", p.Task.Name())
	assert.Empty(t, p.Params)

	p, err = tasks.Parse([]string{"app", "process", "queue", "5"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "queue", p.Task.Name())
	assert.Equal(t, map[string]string{"limit": "5"}, p.Params)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tasks := MustNew()
	tasks.Task("good", "status")
	tasks.Task("bad", "broken {id}")

	p, err := tasks.Parse([]string{"app", "status"})
	require.NoError(t, err)
	assert.Equal(t, "good", p.Task.Name())

	// Extra arguments skip the malformed task before its tokens are read.
	p, err = tasks.Parse([]string{"app", "a", "b", "c"})
	require.NoError(t, err)
	assert.Nil(t, p)

	// A failing word before the malformed token moves on to the next task.
	p, err = tasks.Parse([]string{"app", "other"})
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = tasks.Parse([]string{"app", "broken", "5"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedToken)

	var terr *TokenError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "bad", terr.Task)
	assert.Equal(t, "{id}", terr.Token)
	assert.Equal(t, "malformed_token", terr.Code())

	bad, ok := tasks.Lookup("bad")
	require.True(t, ok)
	assert.ErrorIs(t, bad.Err(), ErrMalformedToken)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	tasks := MustNew()
	first := tasks.Task("import", "import <id>", WithScript("import.sh"), WithHandler("opaque"))
	tasks.Task("queue", "process queue <limit>")

	assert.Equal(t, "import.sh", first.Script())
	assert.Equal(t, "opaque", first.Handler())
	assert.Equal(t, "import <id>", first.Command())
	assert.NoError(t, first.Err())

	replaced := tasks.Task("import", "import stuff <limit>")
	names := make([]string, 0, 2)
	for _, tk := range tasks.Tasks() {
		names = append(names, tk.Name())
	}
	assert.Equal(t, []string{"import", "queue"}, names)

	got, err := tasks.Get("import")
	require.NoError(t, err)
	assert.Same(t, replaced, got)

	_, err = tasks.Get("missing")
	require.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, `task not found: "missing"`, err.Error())
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	_, err := New(WithLogger(nil))
	require.ErrorIs(t, err, ErrInvalidOption)
	assert.Panics(t, func() { MustNew(WithLogger(nil)) })
}

func TestUsage(t *testing.T) {
	t.Parallel()

	tasks := MustNew(WithBanner("Waypoint Console (version 1.0.0)"))
	tasks.Task("queue", "process queue <limit>")
	tasks.Task("import", "import stuff <limit>")

	var buf bytes.Buffer
	require.NoError(t, tasks.Usage(&buf, []string{"index"}))
	assert.Equal(t, "Waypoint Console (version 1.0.0)\n\n"+
		"Tasks (command <required> [<optional>]):\n"+
		" - process queue <limit>\n"+
		" - import stuff <limit>\n\n", buf.String())

	buf.Reset()
	require.NoError(t, tasks.Usage(&buf, []string{"index", "unknown", "command"}))
	assert.Equal(t, "Waypoint Console (version 1.0.0)\n\n"+
		"\033[31mNo task found for command.\033[0m\n\n"+
		"Tasks (command <required> [<optional>]):\n"+
		" - process queue <limit>\n"+
		" - import stuff <limit>\n\n", buf.String())
}

func TestUsageWithoutColor(t *testing.T) {
	t.Parallel()

	tasks := MustNew(WithoutColor())
	tasks.Task("queue", "process queue <limit>")

	var buf bytes.Buffer
	require.NoError(t, tasks.Usage(&buf, []string{"index", "unknown"}))
	assert.Equal(t, "Waypoint Console\n\n"+
		"No task found for command.\n\n"+
		"Tasks (command <required> [<optional>]):\n"+
		" - process queue <limit>\n\n", buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}

func TestUsageWithoutTasks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, MustNew().Usage(&buf, []string{"index"}))
	assert.Equal(t, "Waypoint Console\n\nNo tasks available.\n\n", buf.String())
}

func TestRun(t *testing.T) {
	t.Parallel()

	var got map[string]string
	boom := errors.New("boom")

	tasks := MustNew()
	tasks.Task("import", "import <id>", WithHandler(HandlerFunc(func(_ context.Context, p *ParsedTask) error {
		got = p.Params
		return nil
	})))
	tasks.Task("fail", "fail", WithHandler(HandlerFunc(func(context.Context, *ParsedTask) error {
		return boom
	})))
	tasks.Task("plain", "plain", WithHandler(42))
	var called string
	tasks.Task("func", "func <name>", WithHandler(func(_ context.Context, p *ParsedTask) error {
		called = p.Params["name"]
		return nil
	}))

	var buf bytes.Buffer
	p, err := tasks.Run(t.Context(), &buf, []string{"app", "import", "7"})
	require.NoError(t, err)
	assert.Equal(t, "import", p.Task.Name())
	assert.Equal(t, map[string]string{"id": "7"}, got)
	assert.Empty(t, buf.String())

	p, err = tasks.Run(t.Context(), &buf, []string{"app", "fail"})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "fail", p.Task.Name())

	p, err = tasks.Run(t.Context(), &buf, []string{"app", "plain"})
	require.NoError(t, err)
	assert.Equal(t, "plain", p.Task.Name())

	p, err = tasks.Run(t.Context(), &buf, []string{"app", "func", "feed"})
	require.NoError(t, err)
	assert.Equal(t, "func", p.Task.Name())
	assert.Equal(t, "feed", called)

	p, err = tasks.Run(t.Context(), &buf, []string{"app", "nothing"})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Contains(t, buf.String(), "No task found for command.")
}

func TestObserver(t *testing.T) {
	t.Parallel()

	rec := &parseRecorder{}
	var logs bytes.Buffer
	tasks := MustNew(
		WithObserver(rec, nil),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	tasks.Task("import", "import <id>")

	_, err := tasks.Parse([]string{"app", "import", "1"})
	require.NoError(t, err)
	_, err = tasks.Parse([]string{"app", "export"})
	require.NoError(t, err)

	require.Len(t, rec.events, 2)
	assert.True(t, rec.events[0].Matched)
	assert.Equal(t, "import", rec.events[0].Task)
	assert.Equal(t, []string{"import", "1"}, rec.events[0].Args)
	assert.False(t, rec.events[1].Matched)
	assert.Empty(t, rec.events[1].Task)
	assert.Contains(t, logs.String(), "no task matched")
}
