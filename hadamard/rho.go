package hadamard

import (
	"errors"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// ErrUnstable indicates the iterated self-product never returned to the
// base square within the iteration bound.
var ErrUnstable = errors.New("hadamard: no return to the base square within the bound")

// Options tunes Rho.
type Options struct {
	// MaxIterations caps the stability index that Rho may report: the
	// iteration stops once the counter would exceed it. Zero or
	// negative picks the default bound n*n for a square of order n.
	MaxIterations int
}

// DefaultOptions returns the zero configuration: the n*n bound.
func DefaultOptions() Options {
	return Options{}
}

// Rho reports the stability index of l: the smallest count >= 2 such
// that the count-th iterated self-product of l through its own table
// equals l again. The chase starts from l∘l and multiplies by l on the
// right each round.
//
// When the bound is exhausted first, Rho returns 0 and ErrUnstable.
func Rho(l latin.Square, opts Options) (int, error) {
	var (
		n     = l.Order()
		base  = l.Grid()
		bound = opts.MaxIterations
	)
	if bound <= 0 {
		bound = n * n
	}

	hp, err := Product(base, base, l)
	if err != nil {
		return 0, err
	}
	for count := 2; count <= bound; count++ {
		hp, err = Product(hp, base, l)
		if err != nil {
			return 0, err
		}
		if hp.Equal(base) {
			return count, nil
		}
	}

	return 0, ErrUnstable
}
