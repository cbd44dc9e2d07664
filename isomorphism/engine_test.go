package isomorphism_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/isomorphism"
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

// cyclic builds the order-n cyclic table.
func cyclic(t *testing.T, n int) latin.Square {
	t.Helper()
	sq, err := latin.Cyclic(n)
	require.NoError(t, err)
	return sq
}

// klein is the elementary abelian order-4 table: every symbol squares
// to 1 and the product of two distinct non-unit symbols is the third.
func klein(t *testing.T) latin.Square {
	t.Helper()
	return square(t, [][]int{
		{1, 2, 3, 4},
		{2, 1, 4, 3},
		{3, 4, 1, 2},
		{4, 3, 2, 1},
	})
}

// images flattens results for order-independent comparison.
func images(isos []isomorphism.Isomorphism) [][]int {
	out := make([][]int, 0, len(isos))
	for _, s := range isos {
		out = append(out, s.Images())
	}
	return out
}

func TestAll_CyclicAutomorphisms(t *testing.T) {
	l := cyclic(t, 3)

	got, err := isomorphism.All(l, l, isomorphism.DefaultOptions())
	require.NoError(t, err)
	require.ElementsMatch(t, [][]int{{1, 2, 3}, {1, 3, 2}}, images(got))
	for _, s := range got {
		require.True(t, isomorphism.Check(l, l, s))
	}
}

func TestAll_ShiftedCyclic(t *testing.T) {
	l1 := cyclic(t, 4)
	l2 := square(t, [][]int{
		{4, 1, 2, 3},
		{1, 2, 3, 4},
		{2, 3, 4, 1},
		{3, 4, 1, 2},
	})

	got, err := isomorphism.All(l1, l2, isomorphism.DefaultOptions())
	require.NoError(t, err)
	require.ElementsMatch(t, [][]int{{2, 3, 4, 1}, {2, 1, 4, 3}}, images(got))
	for _, s := range got {
		require.True(t, isomorphism.Check(l1, l2, s))
	}
}

func TestAll_KleinAutomorphisms(t *testing.T) {
	k := klein(t)

	got, err := isomorphism.All(k, k, isomorphism.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, s := range got {
		require.Equal(t, 1, s.Image(1), "unit symbol must stay put")
		require.True(t, isomorphism.Check(k, k, s))
	}
}

func TestAll_NoIsomorphism(t *testing.T) {
	// The cyclic order-4 table has a symbol of multiplicative order 4,
	// the elementary abelian one does not.
	got, err := isomorphism.All(cyclic(t, 4), klein(t), isomorphism.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAll_OrderMismatch(t *testing.T) {
	_, err := isomorphism.All(cyclic(t, 3), cyclic(t, 4), isomorphism.DefaultOptions())
	require.ErrorIs(t, err, isomorphism.ErrOrderMismatch)
}

func TestAll_BudgetExhausted(t *testing.T) {
	k := klein(t)

	_, err := isomorphism.All(k, k, isomorphism.Options{MaxNodes: 1, Workers: 1})
	require.ErrorIs(t, err, isomorphism.ErrBudgetExhausted)
}

func TestAll_ParallelMatchesSequential(t *testing.T) {
	k := klein(t)

	seq, err := isomorphism.All(k, k, isomorphism.Options{Workers: 1})
	require.NoError(t, err)
	par, err := isomorphism.All(k, k, isomorphism.Options{Workers: 4})
	require.NoError(t, err)

	require.ElementsMatch(t, images(seq), images(par))
}

func TestCheck_RejectsWrongTable(t *testing.T) {
	k := klein(t)

	got, err := isomorphism.All(k, k, isomorphism.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, got)

	// An automorphism of the Klein table does not carry it onto the
	// cyclic one, and orders must agree for Check to hold at all.
	require.False(t, isomorphism.Check(k, cyclic(t, 4), got[0]))
	require.False(t, isomorphism.Check(cyclic(t, 3), cyclic(t, 3), got[0]))
}
