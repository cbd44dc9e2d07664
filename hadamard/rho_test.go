package hadamard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/hadamard"
)

func TestRho_KnownSquare(t *testing.T) {
	l := square(t, [][]int{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}})

	got, err := hadamard.Rho(l, hadamard.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

// The cyclic table of order n comes back to itself after exactly n
// iterated products.
func TestRho_CyclicFamily(t *testing.T) {
	for n := 2; n <= 6; n++ {
		got, err := hadamard.Rho(cyclic(t, n), hadamard.DefaultOptions())
		require.NoError(t, err, "order %d", n)
		require.Equal(t, n, got, "order %d", n)
	}
}

func TestRho_BoundExceeded(t *testing.T) {
	l := cyclic(t, 3)

	got, err := hadamard.Rho(l, hadamard.Options{MaxIterations: 2})
	require.ErrorIs(t, err, hadamard.ErrUnstable)
	require.Zero(t, got)
}
