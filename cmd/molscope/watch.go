package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/molscope/molscope/internal/output"
	"github.com/molscope/molscope/internal/pdbfile"
	"github.com/molscope/molscope/internal/watch"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and re-parse coordinate files on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(nil)
			if err != nil {
				return err
			}
			defer w.Stop()

			events, err := w.Watch(ctx, args[0])
			if err != nil {
				return err
			}

			parser := newParserFromConfig()
			logger.Info("watching directory", zap.String("dir", args[0]))

			for ev := range events {
				if ev.Op == watch.Removed {
					logger.Info("file removed", zap.String("path", ev.Path))
					continue
				}

				f, err := pdbfile.Open(ev.Path)
				if err != nil {
					logger.Warn("cannot read changed file",
						zap.String("path", ev.Path), zap.Error(err))
					continue
				}
				s := parser.Parse(f.Bytes())
				f.Close()

				_ = output.WriteSummary(cmd.OutOrStdout(), name(ev.Path), s)
			}
			return nil
		},
	}
}
