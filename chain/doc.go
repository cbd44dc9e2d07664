// Package chain builds Latin squares by filling a chain of
// transversals derived from a grid's diagonal. Squares produced this
// way are stable under iterated Hadamard self-products through
// themselves; the construction guarantees the property, it is not
// verified after the fact (hadamard.Rho measures it).
//
// The chain starts at the base transversal read off the diagonal,
// T0[i] = (row P[P[i,i],P[i,i]], col P[i,i]), and advances by moving
// each row coordinate through the current grid: the successor of cell
// (r, c) holds row Q[r, c] and keeps column c. States whose transversal
// is entirely assigned are chain-complete and get handed to the
// completion engine; everything the completions yield, deduplicated,
// is the result.
//
// The worklist carries (grid, transversal) pairs, each an independent
// value. Since every non-terminal step strictly grows the number of
// filled cells the chain cannot cycle; a seen-state set keyed on
// grid+transversal is kept nonetheless, doubling as deduplication when
// different branches converge on one state.
package chain
