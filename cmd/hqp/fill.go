package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/completion"
)

func newFillCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fill <grid> <transversal>",
		Short: "Enumerate the ways to fill a transversal's empty cells",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0])
			if err != nil {
				return err
			}
			tr, err := readTransversal(args[1])
			if err != nil {
				return err
			}

			start := time.Now()
			grids, err := completion.FillTransversal(g, tr, completion.Options{
				MaxNodes: opts.maxNodes,
				Workers:  opts.workers,
			})
			if err != nil {
				return err
			}
			slog.Info("transversal fill finished",
				"order", g.Order(),
				"fills", len(grids),
				"elapsed", time.Since(start))

			return writeGrids(cmd.OutOrStdout(), grids)
		},
	}
}
