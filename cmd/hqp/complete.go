package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/completion"
)

func newCompleteCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "complete <grid>",
		Short: "Enumerate every Latin square completing a partial grid",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			squares, err := completion.Complete(g, completion.Options{
				MaxNodes: opts.maxNodes,
				Workers:  opts.workers,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			slog.Info("completion finished",
				"order", g.Order(),
				"solutions", len(squares),
				"elapsed", time.Since(start))

			return writeSquares(cmd.OutOrStdout(), squares)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many solutions, 0 means all")

	return cmd
}
