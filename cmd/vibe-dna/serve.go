package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-dna/internal/pipeline"
	"github.com/inodb/vibe-dna/internal/render"
	"github.com/inodb/vibe-dna/internal/web"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the DNA visualization web form",
		Long:  "Start an HTTP server with a form that renders charts for a submitted DNA sequence.",
		Example: `  vibe-dna serve
  vibe-dna serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	renderer := render.NewRenderer(cfg.Charts.Width, cfg.Charts.Height)
	renderer.SetLogger(logger)

	p := pipeline.New(renderer)
	p.SetLogger(logger)

	srv := web.NewServer(cfg.Server, p)
	srv.SetLogger(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting web form",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("chart_width", cfg.Charts.Width),
		zap.Int("chart_height", cfg.Charts.Height))

	return srv.ListenAndServe(ctx)
}
