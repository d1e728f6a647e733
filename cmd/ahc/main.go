package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/adapters/httpclient"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/adapters/probe"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/cli"
	cfgpkg "github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/config"
	obs "github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/observability"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/termui"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/usecase"
)

func main() {
	cfg := cfgpkg.FromEnv()

	logger := obs.NewLogger(cfg.LogLevel)
	metrics := obs.NewMetrics()
	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr, logger)
	}

	prb := probe.New(time.Duration(cfg.ProbeTimeoutMs)*time.Millisecond, logger)
	client := httpclient.New(time.Duration(cfg.RequestTimeoutMs)*time.Millisecond, cfg.InsecureTLS, logger)
	executor := usecase.NewExecutor(prb, client, logger, metrics)
	renderer := termui.NewRenderer(os.Stdout, termui.Options{
		PreviewMaxBytes:        cfg.PreviewMaxBytes,
		WaterfallWidth:         cfg.WaterfallWidth,
		ExposeSensitiveHeaders: cfg.ExposeSensitiveHeaders,
		NoColor:                cfg.NoColor,
	})

	deps := &cli.Deps{
		Cfg:      cfg,
		Logger:   logger,
		Metrics:  metrics,
		Executor: executor,
		Renderer: renderer,
		Out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("request failed")
		os.Exit(1)
	}
}
