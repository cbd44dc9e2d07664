// Package search holds the plumbing shared by the backtracking
// engines: the cooperative node budget and the worker-count clamp.
package search

import "sync/atomic"

// Budget counts decision nodes across all goroutines of one search.
// A limit of 0 (or below) means unbounded. The zero Budget is unbounded.
type Budget struct {
	limit int64
	used  atomic.Int64
}

// NewBudget returns a budget allowing at most limit nodes; limit <= 0
// disables accounting entirely.
func NewBudget(limit int64) *Budget {
	return &Budget{limit: limit}
}

// Spend records one decision node and reports whether the search may
// continue. Once it returns false it keeps returning false, so every
// branch of a parallel search winds down.
func (b *Budget) Spend() bool {
	if b.limit <= 0 {
		return true
	}

	return b.used.Add(1) <= b.limit
}

// Exhausted reports whether the limit was hit.
func (b *Budget) Exhausted() bool {
	return b.limit > 0 && b.used.Load() > b.limit
}
