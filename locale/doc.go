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

// Package locale resolves translatable texts for a locale.
//
// Locales are BCP 47 tags. Underscores are accepted as separators and case
// is ignored, so "nl_NL", "nl-nl" and "NL-nl" name the same locale. A
// lookup that fails for a locale is retried with its more general parents:
//
//	Fallbacks("nl-BE") // ["nl-BE", "nl"]
//
// A Catalog holds the translations of every locale. It is filled during
// setup, usually from one file per locale with LoadFiles, and is safe for
// concurrent lookups afterwards.
package locale
