package main

import (
	"fmt"
	"io"
	"os"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

func readGrid(path string) (latin.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return latin.Grid{}, err
	}
	g, err := latin.Parse(string(data))
	if err != nil {
		return latin.Grid{}, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func readSquare(path string) (latin.Square, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return latin.Square{}, err
	}
	sq, err := latin.ParseSquare(string(data))
	if err != nil {
		return latin.Square{}, fmt.Errorf("%s: %w", path, err)
	}

	return sq, nil
}

func readTransversal(path string) (latin.Transversal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return latin.Transversal{}, err
	}
	tr, err := latin.ParseTransversal(string(data))
	if err != nil {
		return latin.Transversal{}, fmt.Errorf("%s: %w", path, err)
	}

	return tr, nil
}

// writeSquares prints squares blank-line separated, in the same format
// readGrid accepts.
func writeSquares(w io.Writer, squares []latin.Square) error {
	for i, sq := range squares {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, sq); err != nil {
			return err
		}
	}

	return nil
}

func writeGrids(w io.Writer, grids []latin.Grid) error {
	for i, g := range grids {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, g); err != nil {
			return err
		}
	}

	return nil
}
