package isomorphism

import "errors"

var (
	// ErrOrderMismatch indicates the two squares have different orders,
	// so no bijection of [1..n] can relate them.
	ErrOrderMismatch = errors.New("isomorphism: square orders differ")
	// ErrBudgetExhausted indicates the search hit its node budget; the
	// returned list holds the mappings found up to that point.
	ErrBudgetExhausted = errors.New("isomorphism: search budget exhausted")
)

// Options tunes All.
type Options struct {
	// MaxNodes caps the number of search nodes visited. Zero or
	// negative means unbounded. On exhaustion All returns the mappings
	// found so far together with ErrBudgetExhausted.
	MaxNodes int64

	// Workers sets the number of goroutines exploring top-level
	// branches: 1 (and any negative value) runs sequentially, 0 picks
	// a size based on the machine, larger values are used as given.
	Workers int
}

// DefaultOptions returns the sequential, unbounded configuration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
