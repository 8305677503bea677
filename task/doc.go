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

// Package task matches command line arguments against registered tasks.
//
// A task is the command line counterpart of a route. Its command is a
// space separated list of tokens:
//
//	word        the argument must equal the word
//	<name>      a required argument, captured under name
//	[<name>]    an optional argument, captured under name when given
//
// Tasks are tried in registration order and the first one that accepts
// the arguments wins:
//
//	tasks := task.MustNew()
//	tasks.Task("import", "import feed <id> [<limit>]")
//
//	p, err := tasks.Parse(os.Args)    // e.g. ["app", "import", "feed", "5"]
//	if err != nil {
//	    return err                    // a malformed task command
//	}
//	if p == nil {
//	    return tasks.Usage(os.Stdout, os.Args)
//	}
//	fmt.Println(p.Params["id"])       // "5"
//
// Parse never fails because of the arguments themselves: arguments that
// match no task give a nil result.
package task
