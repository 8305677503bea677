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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"rivaas.dev/waypoint/config"
	"rivaas.dev/waypoint/locale"
	"rivaas.dev/waypoint/logging"
	"rivaas.dev/waypoint/router"
	"rivaas.dev/waypoint/task"
)

type rootOptions struct {
	manifests []string
	logFormat string
	logLevel  string
}

// app is a manifest compiled into a router and a task registry.
type app struct {
	manifest *config.Manifest
	logger   *slog.Logger
	router   *router.Router
	tasks    *task.Registry
}

// load reads the manifest files and builds the app. Log output goes to
// stderr.
func (o *rootOptions) load(ctx context.Context, stderr io.Writer, extra ...router.Option) (*app, error) {
	m, err := config.LoadFiles(ctx, o.manifests...)
	if err != nil {
		return nil, err
	}

	format, level := m.Log.Format, m.Log.Level
	if o.logFormat != "" {
		format = o.logFormat
	}
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger, err := logging.Parse(format, level, logging.WithOutput(stderr))
	if err != nil {
		return nil, err
	}

	opts := []router.Option{
		router.WithLogger(logger),
		router.WithDefaultLocale(m.Locale),
		router.WithDiagnostics(router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
			logger.Debug(e.Message, "kind", e.Kind, "fields", e.Fields)
		})),
	}
	if m.Translations != "" {
		catalog, err := locale.LoadFiles(m.Translations)
		if err != nil {
			return nil, err
		}
		logger.Debug("translations loaded", "pattern", m.Translations, "locales", catalog.Locales())
		opts = append(opts, router.WithTranslator(catalog))
	}

	r, err := router.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	a := &app{manifest: m, logger: logger, router: r}
	for _, spec := range m.Routes {
		r.Route(spec.Name, spec.Pattern, router.WithView(spec.View), router.WithHandler(http.HandlerFunc(a.describe)))
	}

	return a, nil
}

// loadTasks is like load and also builds the task registry.
func (o *rootOptions) loadTasks(ctx context.Context, stderr io.Writer, opts ...task.Option) (*app, error) {
	a, err := o.load(ctx, stderr)
	if err != nil {
		return nil, err
	}

	tasks, err := task.New(append([]task.Option{
		task.WithLogger(a.logger),
		task.WithBanner(fmt.Sprintf("Waypoint Console (version %s)", version)),
	}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, spec := range a.manifest.Tasks {
		tasks.Task(spec.Name, spec.Command, task.WithScript(spec.Script))
	}
	a.tasks = tasks

	return a, nil
}

type matchOutput struct {
	Route  string             `json:"route"`
	View   string             `json:"view,omitempty"`
	Locale string             `json:"locale,omitempty"`
	Params map[string]*string `json:"params"`
	URL    string             `json:"url,omitempty"`
}

func newMatchOutput(m *router.Match) matchOutput {
	out := matchOutput{
		Route:  m.Name(),
		Locale: m.Locale,
		Params: make(map[string]*string, m.Captures.Len()),
	}
	if view, ok := m.Route.View().(string); ok {
		out.View = view
	}
	for _, c := range m.Captures.Entries() {
		if c.Valid {
			out.Params[c.Name] = &c.Value
		} else {
			out.Params[c.Name] = nil
		}
	}

	return out
}

// describe answers a matched request with the match as JSON, including
// the canonical URL assembled from it.
func (a *app) describe(w http.ResponseWriter, req *http.Request) {
	m, ok := router.MatchFromContext(req.Context())
	if !ok {
		http.Error(w, "no match in request context", http.StatusInternalServerError)
		return
	}

	out := newMatchOutput(m)
	u, err := a.router.URLFor(req, "", nil)
	if err != nil {
		a.logger.Warn("failed to assemble canonical URL", "route", m.Name(), "error", err)
	} else {
		out.URL = u
	}

	w.Header().Set("Content-Type", "application/json")
	if err := writeJSON(w, out); err != nil {
		a.logger.Error("failed to write response", "error", err)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}
