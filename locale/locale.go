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
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// ErrInvalidLocale indicates a locale that is not a well-formed tag.
var ErrInvalidLocale = errors.New("invalid locale")

func parse(tag string) (language.Tag, error) {
	s := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	t, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", ErrInvalidLocale, tag, err)
	}

	return t, nil
}

// Canonical returns the canonical form of tag, for example "nl-NL" for
// "nl_nl".
func Canonical(tag string) (string, error) {
	t, err := parse(tag)
	if err != nil {
		return "", err
	}

	return t.String(), nil
}

// Fallbacks returns tag in canonical form followed by the tags obtained
// by dropping its trailing subtags one at a time, most specific first:
// "zh-Hant-TW" gives [zh-Hant-TW zh-Hant zh]. Extensions and private use
// subtags are dropped as a whole.
func Fallbacks(tag string) ([]string, error) {
	t, err := parse(tag)
	if err != nil {
		return nil, err
	}

	full := t.String()
	subtags := strings.Split(full, "-")
	n := slices.IndexFunc(subtags, func(s string) bool { return len(s) == 1 })
	if n < 0 {
		n = len(subtags)
	}

	var chain []string
	if n < len(subtags) {
		chain = append(chain, full)
	}
	for i := n; i > 0; i-- {
		if prefix := strings.Join(subtags[:i], "-"); !slices.Contains(chain, prefix) {
			chain = append(chain, prefix)
		}
	}

	return chain, nil
}

// Lookup returns the candidate that best serves tag: the first candidate
// equal to tag or, failing that, to one of its parents. Candidates that
// are not valid tags are ignored.
func Lookup(candidates []string, tag string) (string, bool) {
	chain, err := Fallbacks(tag)
	if err != nil {
		return "", false
	}

	canonical := make([]string, len(candidates))
	for i, c := range candidates {
		canonical[i], _ = Canonical(c)
	}
	for _, want := range chain {
		if i := slices.Index(canonical, want); i >= 0 {
			return candidates[i], true
		}
	}

	return "", false
}
