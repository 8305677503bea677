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

// Package compiler turns route definition strings into compiled definitions.
//
// A definition string has the form
//
//	[METHOD(|METHOD)* ]path[?query]
//
// where the path may contain named parameters (:name), constrained
// parameters (:name<regexp>), nestable optional groups ([...]), wildcards (*)
// and translatable literals ({text}). The query part lists the parameters a
// route accepts (name, name= or name=<regexp>, joined by &), or is empty or !
// to forbid any query string.
//
// # Compilation
//
// Compile is pure: it strips the method prefix, records parameter constraints,
// splits off and parses the query declaration and parses the remaining path
// into a skeleton of nodes:
//
//	def := compiler.Compile("GET|POST /blog[/:slug<[a-z-]+>[/comments/:page<\d+>]]?sort")
//	def.Methods()         // [GET POST]
//	def.Params()          // [slug page]
//	def.PathConstraint("page") // \d+
//
// Malformed skeletons (unbalanced brackets, unparsable query tokens) are not
// reported by Compile. The error is kept on the definition and returned by
// Err, and by every operation that needs the skeleton, so a bad route fails
// the first time it is matched or assembled.
//
// # Expressions
//
// Matching uses an Expression: the skeleton rendered as an anchored regular
// expression for one locale. Translatable literals are resolved through a
// TranslateFunc before rendering; a translation may contain further {text}
// markers which are resolved recursively up to MaxTextDepth.
//
//	expr, err := compiler.NewExpression(def, translate)
//	values, ok := expr.Match("/blog/new-post")
//
// Expressions are immutable and safe for concurrent use.
package compiler
