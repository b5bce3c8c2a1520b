package cli

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/musicmap/internal/server"
	"github.com/matzehuels/musicmap/pkg/diagram"
	"github.com/matzehuels/musicmap/pkg/observability"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := defaultRenderOpts()
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the journey on a local preview server",
		Long: `Serve the rendered journey over HTTP until interrupted.

Routes: / (preview page), /journey.{png,svg,jpg,dot}, /journey.json,
/healthz and /metrics (Prometheus).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			j, err := c.loadJourney(ctx)
			if err != nil {
				return err
			}
			engine, err := diagram.NewEngine(opts.engine, opts.dotPath)
			if err != nil {
				return err
			}
			store, err := c.openCache(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()
			engine = withCache(engine, store, opts.cacheTTL, nil)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			observability.NewPrometheus(reg).Install()
			defer observability.Reset()

			srv := server.New(server.Config{
				Addr:     addr,
				Journey:  j,
				Renderer: &diagram.Renderer{Engine: engine, Options: diagram.Options{Legend: opts.legend}},
				Gatherer: reg,
				Logger:   logger,
			})
			printInfo(c.Out, "Serving http://%s/", srv.Addr())

			err = srv.ListenAndServe(ctx)
			if errors.Is(err, ctx.Err()) {
				printSuccess(c.Out, "Server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	addEngineFlags(cmd, opts)

	return cmd
}
