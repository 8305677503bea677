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

package compiler

import (
	"regexp"
	"strings"
)

// MaxTextDepth bounds how many times translated text is re-scanned for
// further {text} markers.
const MaxTextDepth = 8

// TranslateFunc maps a translatable text to its translation.
// A nil TranslateFunc leaves text unchanged.
type TranslateFunc func(text string) string

var textMarker = regexp.MustCompile(`\{([^{}]+)\}`)

// ResolveText translates key and resolves any markers the translation
// itself contains.
func ResolveText(key string, translate TranslateFunc) (string, error) {
	return resolveText(key, translate, 0)
}

// ResolveMarkers replaces every {text} marker in s with its resolved
// translation. Text outside markers is kept as is.
func ResolveMarkers(s string, translate TranslateFunc) (string, error) {
	return resolveMarkers(s, translate, 0)
}

// StripMarkers replaces every {text} marker in s with its bare text.
func StripMarkers(s string) string {
	return textMarker.ReplaceAllString(s, "$1")
}

func resolveText(key string, translate TranslateFunc, depth int) (string, error) {
	if depth >= MaxTextDepth {
		return "", &SyntaxError{
			Pattern: key,
			Offset:  -1,
			Msg:     "translation still contains markers after resolving",
			Err:     ErrTranslationDepth,
		}
	}
	out := key
	if translate != nil {
		out = translate(key)
	}

	return resolveMarkers(out, translate, depth+1)
}

func resolveMarkers(s string, translate TranslateFunc, depth int) (string, error) {
	if !strings.Contains(s, "{") {
		return s, nil
	}

	var (
		sb   strings.Builder
		last int
	)
	for _, m := range textMarker.FindAllStringSubmatchIndex(s, -1) {
		sb.WriteString(s[last:m[0]])
		resolved, err := resolveText(s[m[2]:m[3]], translate, depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(resolved)
		last = m[1]
	}
	sb.WriteString(s[last:])

	return sb.String(), nil
}
