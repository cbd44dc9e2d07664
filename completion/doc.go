// Package completion enumerates fillings of partial Latin squares:
// Complete returns every full Latin square extending a grid, and
// FillTransversal returns every consistent assignment of symbols along
// a single transversal.
//
// Both entries share one search core:
//
//  1. Validation at the boundary: the input grid must satisfy the
//     partial-Latin invariant (latin.ErrDuplicateSymbol otherwise);
//     infeasibility later in the search is a normal outcome and yields
//     an empty list, never an error.
//  2. A candidate domain (latin.SymbolSet) per still-empty target cell,
//     seeded from row/column contents, and for transversal filling also
//     thinned by the symbols already fixed on the transversal.
//  3. Backtracking over target cells, always branching on a cell with
//     the smallest current domain. Fixing a cell removes its symbol
//     from the domain of every open peer (same row, same column, and
//     for transversal filling every other transversal cell); an emptied
//     domain prunes the branch at once. Undo is trail-based.
//  4. Every recorded solution is an independent deep copy; with
//     Options.Workers above 1, first-level branches run on forked
//     engine states, so no grid or domain is ever shared between
//     branches.
//
// The search is exhaustive by contract: every solution is found unless
// Options.Limit truncates the enumeration or the node budget runs out,
// in which case the solutions found so far are returned together with
// ErrBudgetExhausted.
//
// Complexity is exponential in the number of open cells in the worst
// case; propagation and smallest-domain ordering keep practical inputs
// (small orders, dense prefills) fast.
package completion
