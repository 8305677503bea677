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

package main

import (
	"github.com/spf13/cobra"
)

type parseOutput struct {
	Task   string            `json:"task"`
	Script string            `json:"script,omitempty"`
	Params map[string]string `json:"params"`
}

func newParseCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [--] [args...]",
		Short: "Match command line arguments against the tasks",
		Long: `Match command line arguments against the tasks of the manifest.

The parsed task is printed as JSON. When no task matches, the task listing
is printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.loadTasks(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			argv := append([]string{"waypoint"}, args...)
			p, err := a.tasks.ParseContext(cmd.Context(), argv)
			if err != nil {
				return err
			}
			if p == nil {
				return a.tasks.Usage(colorWriter(cmd.OutOrStdout(), true), argv)
			}

			return writeJSON(cmd.OutOrStdout(), parseOutput{
				Task:   p.Task.Name(),
				Script: p.Task.Script(),
				Params: p.Params,
			})
		},
	}
}
