package latin

// Square is a complete Latin square of order n: every row and every
// column is a permutation of [1..n]. Squares are produced only by
// validating constructors (Grid.ToSquare, Cyclic) and are immutable;
// use Grid for anything that still mutates.
type Square struct {
	n     int
	cells []int
}

// Order reports the square order n.
func (s Square) Order() int { return s.n }

// At returns the symbol at (row, col), both 1-based.
func (s Square) At(row, col int) int {
	Grid{n: s.n, cells: s.cells}.check(row, col)

	return s.cells[(row-1)*s.n+(col-1)]
}

// Grid returns the square's contents as an independent mutable Grid.
func (s Square) Grid() Grid {
	return Grid{n: s.n, cells: s.cells}.Clone()
}

// Equal reports whether two squares have identical order and cells.
func (s Square) Equal(o Square) bool {
	return Grid{n: s.n, cells: s.cells}.Equal(Grid{n: o.n, cells: o.cells})
}

// String renders the square in the codec format (see Grid.String).
func (s Square) String() string {
	return Grid{n: s.n, cells: s.cells}.String()
}

// Cyclic returns the order-n cyclic square L[i,j] = ((i+j-2) mod n)+1,
// the addition table of Z_n under 1-based labels. Handy as a known-good
// input for demonstrations, tests, and benchmarks.
func Cyclic(n int) (Square, error) {
	if n < 1 {
		return Square{}, ErrBadOrder
	}
	cells := make([]int, n*n)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cells[(i-1)*n+(j-1)] = (i+j-2)%n + 1
		}
	}

	return Square{n: n, cells: cells}, nil
}
