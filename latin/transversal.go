package latin

import (
	"fmt"
	"strings"
)

// Cell addresses one grid position, 1-based.
type Cell struct {
	Row, Col int
}

// Transversal is an ordered list of exactly n cells whose rows, and
// separately whose columns, each form a permutation of [1..n] (the
// support of a permutation matrix). A transversal is a set of
// positions only; it says nothing about which symbols a particular
// grid holds there. Validated at construction, immutable afterwards.
type Transversal struct {
	cells []Cell
}

// NewTransversal validates and copies the given cells. The order n is
// taken from len(cells); every coordinate must lie in [1..n] and the
// rows and columns must each be hit exactly once, else ErrBadTransversal.
func NewTransversal(cells []Cell) (Transversal, error) {
	var n = len(cells)
	if n == 0 {
		return Transversal{}, fmt.Errorf("%w: no cells", ErrBadTransversal)
	}
	var (
		rowSeen = make([]bool, n+1)
		colSeen = make([]bool, n+1)
	)
	for i, c := range cells {
		if c.Row < 1 || c.Row > n || c.Col < 1 || c.Col > n {
			return Transversal{}, fmt.Errorf("%w: cell %d is (%d,%d), want coordinates in 1..%d", ErrBadTransversal, i+1, c.Row, c.Col, n)
		}
		if rowSeen[c.Row] {
			return Transversal{}, fmt.Errorf("%w: row %d used twice", ErrBadTransversal, c.Row)
		}
		if colSeen[c.Col] {
			return Transversal{}, fmt.Errorf("%w: column %d used twice", ErrBadTransversal, c.Col)
		}
		rowSeen[c.Row] = true
		colSeen[c.Col] = true
	}
	t := Transversal{cells: make([]Cell, n)}
	copy(t.cells, cells)

	return t, nil
}

// MainDiagonal returns the transversal (1,1),(2,2),...,(n,n).
func MainDiagonal(n int) (Transversal, error) {
	if n < 1 {
		return Transversal{}, ErrBadOrder
	}
	cells := make([]Cell, n)
	for i := 1; i <= n; i++ {
		cells[i-1] = Cell{Row: i, Col: i}
	}

	return Transversal{cells: cells}, nil
}

// Order reports the number of cells n.
func (t Transversal) Order() int { return len(t.cells) }

// At returns the i-th cell, i in [1..n].
func (t Transversal) At(i int) Cell {
	if i < 1 || i > len(t.cells) {
		panic(fmt.Sprintf("latin: transversal index %d out of range 1..%d", i, len(t.cells)))
	}

	return t.cells[i-1]
}

// Cells returns an independent copy of the cell list.
func (t Transversal) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)

	return out
}

// AssignedIn reports whether every transversal cell is non-empty in g.
// The transversal and grid orders must match.
func (t Transversal) AssignedIn(g Grid) bool {
	for _, c := range t.cells {
		if g.At(c.Row, c.Col) == Empty {
			return false
		}
	}

	return true
}

// String renders the cells as "(r,c) (r,c) ...", in order.
func (t Transversal) String() string {
	var b strings.Builder
	for i, c := range t.cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d,%d)", c.Row, c.Col)
	}

	return b.String()
}
