package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/pipeflow/internal/casefile"
	"github.com/bft-labs/pipeflow/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <cases.yaml>",
		Short: "Recompute a YAML case file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			path := args[0]
			out := cmd.OutOrStdout()
			a.reload(out, path)

			w, err := watch.New(watch.Config{
				Path:     path,
				Debounce: a.cfg.WatchDebounce,
				Logger:   a.adapter(),
			}, func(context.Context) {
				a.reload(out, path)
			})
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&a.cfg.WatchDebounce, "debounce", a.cfg.WatchDebounce, "quiet period after a change before recomputing")
	return cmd
}

// reload evaluates the case file once. Load and case errors are logged so
// the watch keeps running until the file is fixed.
func (a *app) reload(w io.Writer, path string) {
	file, err := casefile.Load(path)
	if err != nil {
		a.log.Error().Err(err).Msg("load cases")
		return
	}
	failed, err := a.evaluate(w, file)
	if err != nil {
		a.log.Error().Err(err).Msg("write results")
		return
	}
	a.log.Info().Int("cases", len(file.Cases)).Int("failed", failed).Msg("cases evaluated")
}
