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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"rivaas.dev/waypoint/router"
)

var errNoMatch = errors.New("no route matches")

func newMatchCmd(o *rootOptions) *cobra.Command {
	var method, loc string

	cmd := &cobra.Command{
		Use:   "match <target>",
		Short: "Match a path, with an optional query string, against the routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var opts []router.MatchOption
			if loc != "" {
				opts = append(opts, router.WithLocale(loc))
			}
			m, err := a.router.MatchContext(cmd.Context(), args[0], method, opts...)
			if err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("%w: %s %s", errNoMatch, strings.ToUpper(method), args[0])
			}

			return writeJSON(cmd.OutOrStdout(), newMatchOutput(m))
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", http.MethodGet, "request method")
	cmd.Flags().StringVarP(&loc, "locale", "l", "", "locale of translatable texts (default: manifest locale)")

	return cmd
}

func newAssembleCmd(o *rootOptions) *cobra.Command {
	var loc, from string

	cmd := &cobra.Command{
		Use:   "assemble <name> [key=value ...]",
		Short: "Build the URL of a route",
		Long: `Build the URL of a route from key=value parameters.

With --from, the target is matched first: its parameters fill in the ones
not given and its locale is used. The name "." then means the matched
route.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			a, err := o.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			name := args[0]
			var opts []router.AssembleOption
			if from != "" {
				m, err := a.router.MatchContext(cmd.Context(), from, http.MethodGet)
				if err != nil {
					return err
				}
				if m == nil {
					return fmt.Errorf("%w: GET %s", errNoMatch, from)
				}
				opts = append(opts, router.WithMatch(m))
				if name == "." {
					name = ""
				}
			}
			if loc != "" {
				opts = append(opts, router.WithAssembleLocale(loc))
			}

			u, err := a.router.AssembleContext(cmd.Context(), name, params, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
	cmd.Flags().StringVarP(&loc, "locale", "l", "", "locale of translatable texts")
	cmd.Flags().StringVar(&from, "from", "", "target whose match is reused")

	return cmd
}

// parseParams turns key=value arguments into assembly parameters. A bare
// key is a nil value, which hides a reused parameter.
func parseParams(args []string) (map[string]any, error) {
	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", arg)
		}
		if !ok {
			params[key] = nil
			continue
		}
		params[key] = value
	}

	return params, nil
}
