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
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rivaas.dev/waypoint/config"
	"rivaas.dev/waypoint/config/codec"
	"rivaas.dev/waypoint/router/route"
)

func newRoutesCmd(o *rootOptions) *cobra.Command {
	var (
		asJSON  bool
		asTable bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := o.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			routes := a.router.Routes()
			if asJSON {
				infos := make([]route.Info, len(routes))
				for i, rt := range routes {
					infos[i] = rt.Info()
				}
				return writeJSON(cmd.OutOrStdout(), infos)
			}
			if asTable {
				renderRoutesTable(colorWriter(cmd.OutOrStdout(), true), routes, true, 80)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMETHODS\tPATTERN\tVIEW")
			for _, rt := range routes {
				methods := "*"
				if m := rt.Methods(); len(m) > 0 {
					methods = strings.Join(m, "|")
				}
				view, _ := rt.View().(string)
				pattern := rt.Raw()
				if err := rt.Err(); err != nil {
					pattern += " (invalid)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rt.Name(), methods, pattern, view)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print route details as JSON")
	cmd.Flags().BoolVar(&asTable, "table", false, "print routes as a bordered table")

	return cmd
}

func newTasksCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := o.loadTasks(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOMMAND\tSCRIPT")
			for _, t := range a.tasks.Tasks() {
				command := t.Command()
				if err := t.Err(); err != nil {
					command += " (invalid)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name(), command, t.Script())
			}
			return tw.Flush()
		},
	}
}

func newManifestCmd(o *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the merged manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := config.LoadFiles(cmd.Context(), o.manifests...)
			if err != nil {
				return err
			}

			return config.Dump(cmd.OutOrStdout(), m, codec.Type(format))
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(codec.TypeYAML), "output format: yaml, toml or json")

	return cmd
}
