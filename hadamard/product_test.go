package hadamard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/hadamard"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// square builds a validated complete square from literal rows.
func square(t *testing.T, rows [][]int) latin.Square {
	t.Helper()
	g, err := latin.FromRows(rows)
	require.NoError(t, err)
	sq, err := g.ToSquare()
	require.NoError(t, err)
	return sq
}

// grid builds an unvalidated grid from literal rows.
func grid(t *testing.T, rows [][]int) latin.Grid {
	t.Helper()
	g, err := latin.FromRows(rows)
	require.NoError(t, err)
	return g
}

// cyclic builds the order-n cyclic table.
func cyclic(t *testing.T, n int) latin.Square {
	t.Helper()
	sq, err := latin.Cyclic(n)
	require.NoError(t, err)
	return sq
}

func TestProduct_Elementwise(t *testing.T) {
	p := grid(t, [][]int{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}})
	q := grid(t, [][]int{{1, 3, 2}, {3, 2, 1}, {2, 1, 3}})
	table := square(t, [][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}})

	h, err := hadamard.Product(p, q, table)
	require.NoError(t, err)

	want := grid(t, [][]int{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}})
	require.True(t, h.Equal(want), "got\n%s", h)
}

func TestProduct_AcceptsNonLatinOperands(t *testing.T) {
	ones := grid(t, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	table := square(t, [][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}})

	h, err := hadamard.Product(ones, ones, table)
	require.NoError(t, err)
	require.True(t, h.Equal(ones))
}

func TestProduct_OrderMismatch(t *testing.T) {
	p := grid(t, [][]int{{1, 2}, {2, 1}})
	q := grid(t, [][]int{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}})
	table := square(t, [][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}})

	_, err := hadamard.Product(p, q, table)
	require.ErrorIs(t, err, hadamard.ErrOrderMismatch)
}

func TestProduct_RejectsEmptyCells(t *testing.T) {
	table := square(t, [][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}})
	full := grid(t, [][]int{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}})
	holed := grid(t, [][]int{{1, 2, 3}, {3, 0, 2}, {2, 3, 1}})

	_, err := hadamard.Product(holed, full, table)
	require.ErrorIs(t, err, hadamard.ErrEntryRange)

	_, err = hadamard.Product(full, holed, table)
	require.ErrorIs(t, err, hadamard.ErrEntryRange)
}
