package hadamard

import (
	"errors"
	"fmt"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

var (
	// ErrOrderMismatch indicates the operands and the operation table
	// do not share a single order n.
	ErrOrderMismatch = errors.New("hadamard: operand orders differ")
	// ErrEntryRange indicates an operand entry outside 1..n, so the
	// operation table has no row or column for it. Empty cells count
	// as out of range.
	ErrEntryRange = errors.New("hadamard: operand entry outside 1..n")
)

// Product builds the entrywise product of p and q through table:
// out[i,j] = table[p[i,j], q[i,j]].
//
// The operands need not be Latin. They only need entries inside 1..n,
// where n is the common order of p, q and table.
func Product(p, q latin.Grid, table latin.Square) (latin.Grid, error) {
	n := table.Order()
	if p.Order() != n || q.Order() != n {
		return latin.Grid{}, fmt.Errorf("%w: table %d, operands %d and %d",
			ErrOrderMismatch, n, p.Order(), q.Order())
	}
	out, err := latin.New(n)
	if err != nil {
		return latin.Grid{}, err
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			a := p.At(i, j)
			b := q.At(i, j)
			if a < 1 || a > n {
				return latin.Grid{}, fmt.Errorf("%w: left operand cell (%d,%d) holds %d",
					ErrEntryRange, i, j, a)
			}
			if b < 1 || b > n {
				return latin.Grid{}, fmt.Errorf("%w: right operand cell (%d,%d) holds %d",
					ErrEntryRange, i, j, b)
			}
			out.Set(i, j, table.At(a, b))
		}
	}

	return out, nil
}
