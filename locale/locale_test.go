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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"nl-NL", "nl-nl", "NL-nl", "nl_NL", " nl_nl "} {
		got, err := Canonical(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, "nl-NL", got, tag)
	}

	_, err := Canonical("not a locale!")
	require.ErrorIs(t, err, ErrInvalidLocale)
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want []string
	}{
		{tag: "nl", want: []string{"nl"}},
		{tag: "nl-be", want: []string{"nl-BE", "nl"}},
		{tag: "fr_BE", want: []string{"fr-BE", "fr"}},
		{tag: "nl-NL", want: []string{"nl-NL", "nl"}},
		{tag: "en-GB", want: []string{"en-GB", "en"}},
		{tag: "pt-AO", want: []string{"pt-AO", "pt"}},
		{tag: "zh-Hant-TW", want: []string{"zh-Hant-TW", "zh-Hant", "zh"}},
		{tag: "de-DE-u-co-phonebk", want: []string{"de-DE-u-co-phonebk", "de-DE", "de"}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			got, err := Fallbacks(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupSkipsRegionalParents(t *testing.T) {
	t.Parallel()

	got, ok := Lookup([]string{"en-001", "en"}, "en-GB")
	require.True(t, ok)
	assert.Equal(t, "en", got)

	got, ok = Lookup([]string{"pt-PT", "pt"}, "pt-AO")
	require.True(t, ok)
	assert.Equal(t, "pt", got)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	candidates := []string{"en", "nl", "nl-be", "bad tag!"}

	tests := []struct {
		tag    string
		want   string
		wantOK bool
	}{
		{tag: "nl-BE", want: "nl-be", wantOK: true},
		{tag: "nl_NL", want: "nl", wantOK: true},
		{tag: "NL", want: "nl", wantOK: true},
		{tag: "en-US", want: "en", wantOK: true},
		{tag: "fr"},
		{tag: "fr-BE"},
		{tag: "???"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			got, ok := Lookup(candidates, tt.tag)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := NewCatalog()
	require.NoError(t, c.Add("nl", map[string]string{"Hello": "Hallo", "page": "pagina"}))
	require.NoError(t, c.Add("nl-be", map[string]string{"Bye": "Doei"}))
	require.NoError(t, c.Add("fr-BE", map[string]string{"Welcome": "Bienvenue"}))

	return c
}

func TestCatalogTranslate(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	tests := []struct {
		name string
		text string
		tag  string
		want string
	}{
		{name: "no locale", text: "Hello", want: "Hello"},
		{name: "exact locale", text: "Bye", tag: "nl-be", want: "Doei"},
		{name: "fallback to parent", text: "Hello", tag: "nl-be", want: "Hallo"},
		{name: "other region", text: "Welcome", tag: "fr-be", want: "Bienvenue"},
		{name: "no translation", text: "Hello", tag: "fr-be", want: "Hello"},
		{name: "base locale", text: "Hello", tag: "nl", want: "Hallo"},
		{name: "lower region", text: "Hello", tag: "nl-nl", want: "Hallo"},
		{name: "upper region", text: "Hello", tag: "nl-NL", want: "Hallo"},
		{name: "underscore", text: "Hello", tag: "nl_NL", want: "Hallo"},
		{name: "invalid locale", text: "Hello", tag: "!!", want: "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Translate(tt.text, tt.tag))
		})
	}
}

func TestCatalogAdd(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	require.NoError(t, c.Add("NL", map[string]string{"Hello": "Hoi"}))

	assert.Equal(t, "Hoi", c.Translate("Hello", "nl"))
	assert.Equal(t, "pagina", c.Translate("page", "nl"), "earlier texts are kept")
	assert.Equal(t, []string{"fr-BE", "nl", "nl-BE"}, c.Locales())

	require.ErrorIs(t, c.Add("??", nil), ErrInvalidLocale)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "nl.yaml", "Hello: Hallo\npage: pagina\ncount: 3\n")
	writeFile(t, dir, "nl-be.json", `{"Bye": "Doei"}`)
	writeFile(t, dir, "fr_BE.toml", "Welcome = \"Bienvenue\"\n")

	c, err := LoadFiles(filepath.Join(dir, "*"))
	require.NoError(t, err)

	assert.Equal(t, []string{"fr-BE", "nl", "nl-BE"}, c.Locales())
	assert.Equal(t, "Doei", c.Translate("Bye", "nl-be"))
	assert.Equal(t, "Hallo", c.Translate("Hello", "nl-be"))
	assert.Equal(t, "Bienvenue", c.Translate("Welcome", "fr-be"))
	assert.Equal(t, "3", c.Translate("count", "nl"))
}

func TestLoadFilesNoMatch(t *testing.T) {
	t.Parallel()

	c, err := LoadFiles(filepath.Join(t.TempDir(), "*.yaml"))
	require.NoError(t, err)
	assert.Empty(t, c.Locales())
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "nl.txt", "Hello=Hallo")
	writeFile(t, dir, "nl.yaml", "Hello: [unclosed")
	writeFile(t, dir, "bad tag!.json", `{"Hello": "Hallo"}`)
	writeFile(t, dir, "nested.json", `{"Hello": {"a": 1}}`)

	c := NewCatalog()
	require.Error(t, c.LoadFile(filepath.Join(dir, "nl.txt")))
	require.Error(t, c.LoadFile(filepath.Join(dir, "nl.yaml")))
	require.ErrorIs(t, c.LoadFile(filepath.Join(dir, "bad tag!.json")), ErrInvalidLocale)
	require.Error(t, c.LoadFile(filepath.Join(dir, "nested.json")))
	require.Error(t, c.LoadFile(filepath.Join(dir, "missing.yaml")))

	_, err := LoadFiles("[")
	require.Error(t, err)
}
