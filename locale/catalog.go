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

package locale

import (
	"maps"
	"slices"
)

// Catalog maps locales to translated texts.
type Catalog struct {
	texts map[string]map[string]string // canonical locale -> text -> translation
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{texts: make(map[string]map[string]string)}
}

// Add merges texts into the translations of tag. Later additions replace
// earlier translations of the same text.
func (c *Catalog) Add(tag string, texts map[string]string) error {
	canonical, err := Canonical(tag)
	if err != nil {
		return err
	}

	dst, ok := c.texts[canonical]
	if !ok {
		dst = make(map[string]string, len(texts))
		c.texts[canonical] = dst
	}
	maps.Copy(dst, texts)

	return nil
}

// Locales returns the canonical locales in the catalog, sorted.
func (c *Catalog) Locales() []string {
	return slices.Sorted(maps.Keys(c.texts))
}

// Lookup returns the translation of text for tag. The locales of the
// fallback chain are tried in order and the first one translating text
// wins.
func (c *Catalog) Lookup(text, tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	chain, err := Fallbacks(tag)
	if err != nil {
		return "", false
	}
	for _, l := range chain {
		if t, ok := c.texts[l][text]; ok {
			return t, true
		}
	}

	return "", false
}

// Translate returns the translation of text for tag, or text itself when
// there is none.
func (c *Catalog) Translate(text, tag string) string {
	if t, ok := c.Lookup(text, tag); ok {
		return t
	}

	return text
}
