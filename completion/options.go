package completion

import "errors"

// Sentinel errors for the completion engines.
var (
	// ErrBudgetExhausted indicates the node budget ran out; the result
	// slice returned alongside holds every solution found up to then.
	ErrBudgetExhausted = errors.New("completion: search node budget exhausted")

	// ErrOrderMismatch indicates a transversal whose order differs from
	// the grid it should be filled in.
	ErrOrderMismatch = errors.New("completion: transversal and grid orders differ")
)

// Options tunes a completion or transversal-fill search. The zero
// value is NOT the default; use DefaultOptions.
type Options struct {
	// MaxNodes bounds the number of decision nodes explored; 0 means
	// unbounded. When the budget runs out the engine returns the
	// solutions collected so far plus ErrBudgetExhausted.
	MaxNodes int64

	// Workers controls branch parallelism: 1 runs the reference
	// sequential search, 0 picks min(NumCPU, 8), k > 1 fans the
	// first-level branches out to at most k goroutines. Values below
	// zero behave like 1. Result ordering is only deterministic for
	// sequential runs; treat results as a set.
	Workers int

	// Limit stops the enumeration after this many solutions; 0 keeps
	// the search exhaustive.
	Limit int
}

// DefaultOptions returns the sequential, unbounded, exhaustive setup.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
