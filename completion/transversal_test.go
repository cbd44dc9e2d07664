package completion_test

import (
	"testing"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/completion"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
	"github.com/stretchr/testify/require"
)

func TestFillTransversal_FullyAssignedSingleton(t *testing.T) {
	sq, err := latin.Cyclic(3)
	require.NoError(t, err)
	g := sq.Grid()
	diag, err := latin.MainDiagonal(3)
	require.NoError(t, err)

	out, err := completion.FillTransversal(g, diag, completion.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Equal(g))
}

func TestFillTransversal_SingleFill(t *testing.T) {
	g, err := latin.Parse("2 0 0\n0 3 0\n0 0 1\n")
	require.NoError(t, err)
	tr, err := latin.NewTransversal([]latin.Cell{{Row: 3, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 1}})
	require.NoError(t, err)

	out, err := completion.FillTransversal(g, tr, completion.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)

	want, err := latin.Parse("2 0 3\n1 3 0\n0 2 1\n")
	require.NoError(t, err)
	require.True(t, out[0].Equal(want))

	// The input grid itself is untouched.
	require.Equal(t, latin.Empty, g.At(1, 3))
}

func TestFillTransversal_EnumeratesAllFills(t *testing.T) {
	g, err := latin.FromRows([][]int{
		{2, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 3},
	})
	require.NoError(t, err)
	tr, err := latin.NewTransversal([]latin.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 3, Col: 4}, {Row: 4, Col: 3}})
	require.NoError(t, err)

	out, err := completion.FillTransversal(g, tr, completion.DefaultOptions())
	require.NoError(t, err)
	// (1,2),(2,1) draw from {3,4}, (3,4),(4,3) from {1,2}, pairwise
	// distinct along the transversal: 2*2 fills.
	require.Len(t, out, 4)
	for _, q := range out {
		require.NoError(t, q.Validate())
		// Only transversal cells were assigned.
		require.Equal(t, 16-4-4, q.EmptyCount())
		seen := latin.NoSymbols(4)
		for _, c := range tr.Cells() {
			v := q.At(c.Row, c.Col)
			require.NotEqual(t, latin.Empty, v)
			require.False(t, seen.Has(v), "duplicate %d on transversal", v)
			seen.Add(v)
		}
	}
}

func TestFillTransversal_FixedSymbolBansValue(t *testing.T) {
	// (1,1) fixes 1 on the transversal; the open cell (2,3) admits only
	// 1 from its row and column, so no distinct filling exists.
	g, err := latin.Parse("1 0 0\n0 3 0\n0 0 2\n")
	require.NoError(t, err)
	tr, err := latin.NewTransversal([]latin.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 3}, {Row: 3, Col: 2}})
	require.NoError(t, err)

	out, err := completion.FillTransversal(g, tr, completion.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFillTransversal_FixedDuplicateInfeasible(t *testing.T) {
	g, err := latin.Parse("1 0 0\n0 1 0\n0 0 0\n")
	require.NoError(t, err)
	diag, err := latin.MainDiagonal(3)
	require.NoError(t, err)

	out, err := completion.FillTransversal(g, diag, completion.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFillTransversal_OrderMismatch(t *testing.T) {
	g, err := latin.New(3)
	require.NoError(t, err)
	tr, err := latin.NewTransversal([]latin.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}})
	require.NoError(t, err)

	_, err = completion.FillTransversal(g, tr, completion.DefaultOptions())
	require.ErrorIs(t, err, completion.ErrOrderMismatch)
}

func TestFillTransversal_ValidatesGrid(t *testing.T) {
	g, err := latin.FromRows([][]int{{1, 0}, {1, 0}})
	require.NoError(t, err)
	diag, err := latin.MainDiagonal(2)
	require.NoError(t, err)

	_, err = completion.FillTransversal(g, diag, completion.DefaultOptions())
	require.ErrorIs(t, err, latin.ErrDuplicateSymbol)
}
