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
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"rivaas.dev/waypoint/metrics"
	"rivaas.dev/waypoint/middleware"
	"rivaas.dev/waypoint/router"
	"rivaas.dev/waypoint/tracing"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr         string
	metricsPath  string
	tracing      string
	otlpEndpoint string
	quiet        bool
	noColor      bool
}

func newServeCmd(o *rootOptions) *cobra.Command {
	so := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routes over HTTP",
		Long: `Serve the routes of the manifest over HTTP.

Every matched request is answered with the match as JSON. Requests that
match no route get a 404 problem document. Prometheus metrics are served
on --metrics-path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			obs, err := so.tracer(ctx)
			if err != nil {
				return err
			}
			defer shutdown(cmd.ErrOrStderr(), "tracing", obs.Shutdown)

			rec, err := metrics.New()
			if err != nil {
				return err
			}
			defer shutdown(cmd.ErrOrStderr(), "metrics", rec.Shutdown)

			a, err := o.load(ctx, cmd.ErrOrStderr(), router.WithObserver(rec, obs))
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", so.addr)
			if err != nil {
				return fmt.Errorf("failed to listen: %w", err)
			}
			srv := &http.Server{
				Handler:           newServeHandler(a, rec, obs, so.metricsPath),
				ReadHeaderTimeout: 10 * time.Second,
			}
			if !so.quiet {
				printBanner(cmd.OutOrStdout(), bannerInfo{
					Name:    "waypoint",
					Version: version,
					Addr:    ln.Addr().String(),
					Metrics: so.metricsPath,
					Tracing: so.tracing,
				}, a.router.Routes(), !so.noColor)
			}
			a.logger.Info("serving routes", "addr", ln.Addr().String(), "routes", len(a.router.Routes()))

			return serve(ctx, srv, ln)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&so.addr, "addr", ":8080", "listen address")
	flags.StringVar(&so.metricsPath, "metrics-path", "/metrics", "path of the Prometheus endpoint, empty to disable")
	flags.StringVar(&so.tracing, "tracing", string(tracing.NoopProvider), "tracing provider: noop, stdout, otlp or otlp-http")
	flags.StringVar(&so.otlpEndpoint, "otlp-endpoint", "", "OTLP collector endpoint")
	flags.BoolVarP(&so.quiet, "quiet", "q", false, "do not print the startup banner")
	flags.BoolVar(&so.noColor, "no-color", false, "print the startup banner without colors")

	return cmd
}

func (so *serveOptions) tracer(ctx context.Context) (*tracing.Observer, error) {
	var opt tracing.Option
	switch tracing.Provider(so.tracing) {
	case tracing.NoopProvider:
		opt = tracing.WithNoop()
	case tracing.StdoutProvider:
		opt = tracing.WithStdout()
	case tracing.OTLPProvider:
		opt = tracing.WithOTLP(so.otlpEndpoint, true)
	case tracing.OTLPHTTPProvider:
		opt = tracing.WithOTLPHTTP(so.otlpEndpoint)
	default:
		return nil, fmt.Errorf("unknown tracing provider %q", so.tracing)
	}

	return tracing.New(ctx, opt, tracing.WithServiceVersion(version))
}

func newServeHandler(a *app, rec *metrics.Recorder, obs *tracing.Observer, metricsPath string) http.Handler {
	mux := http.NewServeMux()
	if metricsPath != "" {
		mux.Handle(metricsPath, rec.Handler())
	}
	mux.Handle("/", middleware.Chain(a.router,
		obs.Middleware,
		middleware.RequestID(),
		middleware.AccessLog(a.logger),
		middleware.Recovery(middleware.WithRecoveryLogger(a.logger)),
	))

	return mux
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func shutdown(w io.Writer, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		fmt.Fprintf(w, "failed to shut down %s: %v\n", name, err)
	}
}
