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

package router

import (
	"log/slog"

	riverrors "rivaas.dev/waypoint/errors"
)

// Translator translates a text for a locale. Implementations return text
// unchanged when they have no translation. locale.Catalog implements it.
type Translator interface {
	Translate(text, locale string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(text, locale string) string

// Translate calls f(text, locale).
func (f TranslatorFunc) Translate(text, locale string) string {
	return f(text, locale)
}

// WithLogger sets the logger for registration and matching events.
// The default discards everything.
//
// Example:
//
//	r := router.MustNew(router.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithTranslator sets the translator used for {text} literals.
// Without one, texts are used as written.
func WithTranslator(t Translator) Option {
	return func(r *Router) {
		r.translator = t
	}
}

// WithDefaultLocale sets the locale used when a call does not name one.
func WithDefaultLocale(tag string) Option {
	return func(r *Router) {
		r.locale = tag
	}
}

// WithDiagnostics sets a handler for diagnostic events.
//
// Example:
//
//	handler := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := router.MustNew(router.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithObserver adds observers notified after every match and assembly.
func WithObserver(observers ...Observer) Option {
	return func(r *Router) {
		for _, o := range observers {
			if o != nil {
				r.observers = append(r.observers, o)
			}
		}
	}
}

// WithFormatter sets the formatter ServeHTTP writes errors with.
// The default is RFC 9457 problem details.
func WithFormatter(f riverrors.Formatter) Option {
	return func(r *Router) {
		r.formatter = f
	}
}

// WithParamCountThreshold sets how many path parameters a route may have
// before registration emits DiagHighParamCount.
func WithParamCountThreshold(n int) Option {
	return func(r *Router) {
		r.paramThreshold = n
	}
}
