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

// Package logging builds the [slog.Logger] used by the waypoint router, the
// task registry and the command line tool.
//
// Three formats are available: "json" and "text" use the slog handlers,
// "console" writes colored lines for humans:
//
//	logger, err := logging.New(
//	    logging.WithFormat(logging.FormatConsole),
//	    logging.WithLevel(slog.LevelDebug),
//	)
//
// Format and level names from a manifest are parsed with [ParseFormat] and
// [ParseLevel].
package logging
