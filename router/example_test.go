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

package router_test

import (
	"fmt"
	"net/http"

	"rivaas.dev/waypoint/router"
)

func ExampleRouter_Match() {
	r := router.MustNew()
	r.Route("post", `/blog/:slug[/comments/:page<\d+>]`)

	m, err := r.Match("/blog/hello", http.MethodGet)
	if err != nil {
		panic(err)
	}
	for _, c := range m.Captures.Entries() {
		fmt.Println(c.Name, c.Value, c.Valid)
	}
	// Output:
	// slug hello true
	// page  false
}

func ExampleRouter_Assemble() {
	r := router.MustNew()
	r.Route("post", `/blog/:slug[/comments/:page<\d+>]?sort=<asc|desc>`)

	u, err := r.Assemble("post", map[string]any{"slug": "hello", "page": 2, "sort": "desc"})
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: /blog/hello/comments/2?sort=desc
}

func ExampleWithMatch() {
	r := router.MustNew()
	r.Route("view", "/blog/:slug?page")
	r.Route("comments", "/blog/:slug/comments?page")

	m, _ := r.Match("/blog/hello/comments?page=3", http.MethodGet)
	u, _ := r.Assemble("view", nil, router.WithMatch(m))
	fmt.Println(m.Name(), u)
	// Output: comments /blog/hello?page=3
}

func ExampleWithTranslator() {
	nl := router.TranslatorFunc(func(text, locale string) string {
		if locale == "nl" && text == "page" {
			return "pagina"
		}
		return text
	})

	r := router.MustNew(router.WithTranslator(nl), router.WithDefaultLocale("nl"))
	r.Route("blog", `/blog/{page}/:page<\d+>`)

	u, _ := r.Assemble("blog", map[string]any{"page": 4})
	m, _ := r.Match(u, http.MethodGet)
	fmt.Println(u, m.Name())
	// Output: /blog/pagina/4 blog
}
