package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/autobudget-go/internal/server"
	"github.com/cloud-ru/autobudget-go/internal/tools"
	"github.com/cloud-ru/autobudget-go/internal/tracing"
)

var flagPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation tools over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "Listen port (default $PORT or 8000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := state.cfg
	if flagPort > 0 {
		cfg.Port = flagPort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdown, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, state.log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			state.log.Warn("tracer shutdown", "error", err)
		}
	}()

	registry := tools.NewRegistry(tools.Deps{
		Config:  cfg,
		Engine:  state.engine,
		Catalog: state.catalog,
		Tracer:  tracer,
	})
	state.log.Info("tools registered", "tools", registry.Names())

	return server.New(cfg, registry, state.catalog, state.log).Run(ctx)
}
