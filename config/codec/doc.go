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

// Package codec encodes and decodes manifest and translation files.
//
// YAML, TOML and JSON codecs register themselves under TypeYAML, TypeTOML
// and TypeJSON. ForFile picks one by file extension:
//
//	dec, err := codec.ForFile("translations/nl.yaml")
//	var texts map[string]any
//	err = dec.Decode(data, &texts)
//
// EnvCodec decodes environment variables into nested maps, so they can be
// merged over file contents.
package codec
