// Package cli wires the cobra command tree: the interactive prompt flow at
// the root and the non-interactive `quick` subcommand. Both feed the same
// execute→analyze→render pipeline.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/config"
	obs "github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/observability"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/termui"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/usecase"
)

type Deps struct {
	Cfg      config.Config
	Logger   *zerolog.Logger
	Metrics  *obs.Metrics
	Executor *usecase.Executor
	Renderer *termui.Renderer
	Out      io.Writer
}

func NewRootCmd(d *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "ahc",
		Short: "Compose and send a single HTTP request and inspect the response",
		Long: `ahc sends one HTTP request and renders a breakdown of what happened:
request summary, per-phase timing table, waterfall chart, status, selected
headers, and a truncated body preview. Without a subcommand it prompts for
the request interactively; use "ahc quick" for one-shot usage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), d)
		},
	}
	root.AddCommand(newQuickCmd(d))
	return root
}

// runPipeline executes the request and renders the full breakdown, or the
// best-effort failure breakdown when transport fails.
func runPipeline(ctx context.Context, d *Deps, cfg domain.RequestConfig) (*domain.ResponseRecord, error) {
	rec, err := d.Executor.Execute(ctx, cfg)
	if err != nil {
		var terr *domain.TransportError
		if errors.As(err, &terr) {
			d.Renderer.RenderFailure(cfg, terr)
		}
		return nil, err
	}
	analysis := usecase.Analyze(rec)
	d.Renderer.RenderBreakdown(cfg, rec, analysis)
	return rec, nil
}
