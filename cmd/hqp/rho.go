package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/hadamard"
)

func newRhoCmd(*globalOptions) *cobra.Command {
	var maxIterations int

	cmd := &cobra.Command{
		Use:   "rho <table>",
		Short: "Report the stability index of a Latin square",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := readSquare(args[0])
			if err != nil {
				return err
			}

			count, err := hadamard.Rho(l, hadamard.Options{MaxIterations: maxIterations})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)

			return err
		},
	}
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "iteration bound, 0 means order squared")

	return cmd
}
