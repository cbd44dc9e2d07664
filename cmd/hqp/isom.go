package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/isomorphism"
)

func newIsomCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "isom <first> <second>",
		Short: "List the bijections carrying one square onto the other",
		Long: `isom prints one line per isomorphism found: the images of 1..n in
order. No output (and exit code 0) means the squares are not
isomorphic.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l1, err := readSquare(args[0])
			if err != nil {
				return err
			}
			l2, err := readSquare(args[1])
			if err != nil {
				return err
			}

			start := time.Now()
			isos, err := isomorphism.All(l1, l2, isomorphism.Options{
				MaxNodes: opts.maxNodes,
				Workers:  opts.workers,
			})
			if err != nil {
				return err
			}
			slog.Info("isomorphism search finished",
				"order", l1.Order(),
				"found", len(isos),
				"elapsed", time.Since(start))

			for _, sigma := range isos {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), sigma); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
