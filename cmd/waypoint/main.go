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

// Command waypoint inspects and serves the routes and tasks of a waypoint
// manifest.
//
//	waypoint -f waypoint.yaml routes
//	waypoint -f waypoint.yaml match --locale nl /nieuws/2
//	waypoint -f waypoint.yaml assemble blog page=3
//	waypoint -f waypoint.yaml parse -- import feed 5
//	waypoint -f waypoint.yaml serve --addr :8080
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "waypoint",
		Short: "Match, assemble and serve the routes of a waypoint manifest",
		Long: `Waypoint compiles the routes and tasks declared in a manifest.

Routes use the waypoint pattern language:

  GET|POST /{blog}[/:page<\d+>]?limit<\d+>

Tasks use space separated words, <required> and [<optional>] arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringSliceVarP(&o.manifests, "file", "f", []string{"waypoint.yaml"}, "manifest files, merged in order")
	flags.StringVar(&o.logFormat, "log-format", "", "log format: text, json or console (default: manifest)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error (default: manifest)")

	root.AddCommand(
		newMatchCmd(o),
		newAssembleCmd(o),
		newParseCmd(o),
		newRoutesCmd(o),
		newTasksCmd(o),
		newManifestCmd(o),
		newServeCmd(o),
		newVersionCmd(),
	)

	return root
}
