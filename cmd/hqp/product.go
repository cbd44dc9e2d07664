package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/hadamard"
)

func newProductCmd(*globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <left> <right> <table>",
		Short: "Compose two grids entrywise through a Latin square table",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readGrid(args[0])
			if err != nil {
				return err
			}
			q, err := readGrid(args[1])
			if err != nil {
				return err
			}
			table, err := readSquare(args[2])
			if err != nil {
				return err
			}

			h, err := hadamard.Product(p, q, table)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), h)

			return err
		},
	}
}
