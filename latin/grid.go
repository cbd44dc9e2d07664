package latin

import (
	"fmt"
	"strconv"
	"strings"
)

// Empty is the symbol value of an unassigned cell.
const Empty = 0

// Grid is an order-n integer matrix with 1-based indexing: symbols in
// [1..n], Empty (0) for unassigned cells. A Grid carries no Latin
// invariant of its own; Validate checks the partial-Latin-square
// property, ToSquare additionally requires completeness.
//
// Storage is a flat row-major slice, so a copied Grid value shares
// cells with the original exactly like a copied slice header does.
// Use Clone wherever an independent square is needed.
type Grid struct {
	n     int
	cells []int
}

// New returns an all-empty Grid of the given order.
func New(order int) (Grid, error) {
	if order < 1 {
		return Grid{}, ErrBadOrder
	}

	return Grid{n: order, cells: make([]int, order*order)}, nil
}

// FromRows builds a Grid from row slices. The input must be square and
// every entry must lie in [0..n]; the Latin distinctness invariant is
// deliberately not checked here (see Validate).
func FromRows(rows [][]int) (Grid, error) {
	var n = len(rows)
	if n == 0 {
		return Grid{}, ErrBadOrder
	}
	g := Grid{n: n, cells: make([]int, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i+1, len(row), n)
		}
		for j, v := range row {
			if v < 0 || v > n {
				return Grid{}, fmt.Errorf("%w: cell (%d,%d) holds %d, want 0..%d", ErrSymbolRange, i+1, j+1, v, n)
			}
			g.cells = append(g.cells, v)
		}
	}

	return g, nil
}

// Order reports the grid order n.
func (g Grid) Order() int { return g.n }

// At returns the symbol at (row, col), both 1-based.
// Out-of-range coordinates panic, as slice indexing would.
func (g Grid) At(row, col int) int {
	g.check(row, col)

	return g.cells[(row-1)*g.n+(col-1)]
}

// Set writes symbol v at (row, col), both 1-based. The coordinates and
// v must be in range (v in [0..n]); violations panic since they are
// programmer errors, not input errors.
func (g Grid) Set(row, col, v int) {
	g.check(row, col)
	if v < 0 || v > g.n {
		panic(fmt.Sprintf("latin: Set(%d,%d): symbol %d out of range 0..%d", row, col, v, g.n))
	}
	g.cells[(row-1)*g.n+(col-1)] = v
}

// check panics on 1-based coordinates outside [1..n].
func (g Grid) check(row, col int) {
	if row < 1 || row > g.n || col < 1 || col > g.n {
		panic(fmt.Sprintf("latin: cell (%d,%d) out of range for order %d", row, col, g.n))
	}
}

// Clone returns an independent deep copy of the grid.
func (g Grid) Clone() Grid {
	out := Grid{n: g.n, cells: make([]int, len(g.cells))}
	copy(out.cells, g.cells)

	return out
}

// Equal reports whether two grids have identical order and cells.
func (g Grid) Equal(o Grid) bool {
	if g.n != o.n {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}

	return true
}

// IsComplete reports whether no cell is Empty.
func (g Grid) IsComplete() bool {
	for _, v := range g.cells {
		if v == Empty {
			return false
		}
	}

	return true
}

// EmptyCount returns the number of Empty cells.
func (g Grid) EmptyCount() int {
	var k int
	for _, v := range g.cells {
		if v == Empty {
			k++
		}
	}

	return k
}

// EmptyCells lists all Empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var out []Cell
	for r := 1; r <= g.n; r++ {
		for c := 1; c <= g.n; c++ {
			if g.cells[(r-1)*g.n+(c-1)] == Empty {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}

	return out
}

// Validate checks the partial-Latin-square invariant: no two equal
// non-empty symbols share a row or a column. Shape and symbol range are
// guaranteed by construction. Returns ErrDuplicateSymbol on violation.
func (g Grid) Validate() error {
	var (
		r, c, v int
		seen    []bool
	)
	// Rows first, then columns; first offence wins.
	seen = make([]bool, g.n+1)
	for r = 1; r <= g.n; r++ {
		clear(seen)
		for c = 1; c <= g.n; c++ {
			v = g.cells[(r-1)*g.n+(c-1)]
			if v == Empty {
				continue
			}
			if seen[v] {
				return fmt.Errorf("%w: symbol %d twice in row %d", ErrDuplicateSymbol, v, r)
			}
			seen[v] = true
		}
	}
	for c = 1; c <= g.n; c++ {
		clear(seen)
		for r = 1; r <= g.n; r++ {
			v = g.cells[(r-1)*g.n+(c-1)]
			if v == Empty {
				continue
			}
			if seen[v] {
				return fmt.Errorf("%w: symbol %d twice in column %d", ErrDuplicateSymbol, v, c)
			}
			seen[v] = true
		}
	}

	return nil
}

// Candidates returns the symbols assignable at the given cell: [1..n]
// minus every non-empty symbol in the cell's row and column. The cell's
// own current symbol is ignored, so Candidates on a filled cell lists
// the alternatives consistent with its peers.
func (g Grid) Candidates(at Cell) SymbolSet {
	g.check(at.Row, at.Col)
	var (
		s = AllSymbols(g.n)
		k int
		v int
	)
	for k = 1; k <= g.n; k++ {
		if k != at.Col {
			if v = g.cells[(at.Row-1)*g.n+(k-1)]; v != Empty {
				s.Remove(v)
			}
		}
		if k != at.Row {
			if v = g.cells[(k-1)*g.n+(at.Col-1)]; v != Empty {
				s.Remove(v)
			}
		}
	}

	return s
}

// ToSquare converts a complete, valid grid into an immutable Square.
// Returns ErrIncomplete if any cell is Empty, or ErrDuplicateSymbol if
// the Latin invariant fails.
func (g Grid) ToSquare() (Square, error) {
	if !g.IsComplete() {
		return Square{}, ErrIncomplete
	}
	if err := g.Validate(); err != nil {
		return Square{}, err
	}
	cp := g.Clone()

	return Square{n: cp.n, cells: cp.cells}, nil
}

// String renders the grid in the codec format accepted by Parse: one
// row per line, blank-separated symbols, 0 for empty cells.
func (g Grid) String() string {
	var b strings.Builder
	for r := 1; r <= g.n; r++ {
		for c := 1; c <= g.n; c++ {
			if c > 1 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(g.cells[(r-1)*g.n+(c-1)]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
