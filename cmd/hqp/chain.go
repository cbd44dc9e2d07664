package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/chain"
)

func newChainCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <grid>",
		Short: "Grow a diagonal seed into its transversal-chain squares",
		Long: `chain reads a partial grid whose diagonal is fully assigned, builds
the base transversal from the diagonal, and follows the chain of
derived transversals. It prints every Latin square certified by a
completed chain.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			squares, err := chain.Squares(g, chain.Options{
				MaxNodes: opts.maxNodes,
				Workers:  opts.workers,
			})
			if err != nil {
				return err
			}
			slog.Info("chain finished",
				"order", g.Order(),
				"squares", len(squares),
				"elapsed", time.Since(start))

			return writeSquares(cmd.OutOrStdout(), squares)
		},
	}
}
