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

package task_test

import (
	"fmt"
	"os"

	"rivaas.dev/waypoint/task"
)

func ExampleRegistry_Parse() {
	tasks := task.MustNew()
	tasks.Task("import", "import feed <id> [<limit>]")

	p, err := tasks.Parse([]string{"app", "import", "feed", "5", "10"})
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Task.Name(), p.Params["id"], p.Params["limit"])

	// Output: import 5 10
}

func ExampleRegistry_Usage() {
	tasks := task.MustNew()
	tasks.Task("queue", "process queue <limit>")

	if err := tasks.Usage(os.Stdout, []string{"app"}); err != nil {
		panic(err)
	}

	// Output:
	// Waypoint Console
	//
	// Tasks (command <required> [<optional>]):
	//  - process queue <limit>
}
