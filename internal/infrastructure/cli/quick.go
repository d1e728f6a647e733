package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuickCmd(d *Deps) *cobra.Command {
	var (
		method      string
		headers     []string
		queries     []string
		data        string
		harPath     string
		showCommand bool
	)
	cmd := &cobra.Command{
		Use:   "quick [flags] <url>",
		Short: "Send a request without prompts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := BuildConfig(args[0], method, headers, queries, data)
			if err != nil {
				return err
			}
			rec, err := runPipeline(cmd.Context(), d, cfg)
			if err != nil {
				return err
			}
			if showCommand {
				fmt.Fprintf(d.Out, "\nRe-run with: %s\n", EncodeCommand(cfg))
			}
			if harPath != "" {
				if err := WriteHAR(harPath, cfg, rec); err != nil {
					return fmt.Errorf("write har: %w", err)
				}
				d.Logger.Info().Str("path", harPath).Msg("har written")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", "GET", "request method")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "request header as 'Name: Value' (repeatable)")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "query parameter as 'name=value' (repeatable)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body (raw text or JSON)")
	cmd.Flags().StringVar(&harPath, "har", "", "write the exchange as a HAR 1.2 file")
	cmd.Flags().BoolVar(&showCommand, "show-command", false, "print a reusable quick command after the breakdown")
	return cmd
}
