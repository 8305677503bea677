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

// Package config loads waypoint manifests.
//
// A manifest declares the default locale, the translation files, the log
// settings, the routes and the tasks of an application:
//
//	locale: nl-nl
//	translations: translations/*.yaml
//	log:
//	  format: text
//	  level: info
//	routes:
//	  - name: blog
//	    pattern: GET|POST /blog/:page<\d+>
//	    view: blog.html
//	tasks:
//	  - name: import
//	    command: import feed <id> [<limit>]
//	    script: import.sh
//
// Manifests can be split over several YAML, TOML or JSON files. Sources are
// merged in order: later scalars win, route and task lists are appended.
// Environment variables with the WAYPOINT_ prefix are merged last:
//
//	m, err := config.Load(ctx,
//	    config.WithFile("waypoint.yaml"),
//	    config.WithFile("waypoint.local.toml"),
//	    config.WithEnv(config.EnvPrefix),
//	)
package config
