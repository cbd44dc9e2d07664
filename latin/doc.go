// Package latin defines the data model shared by every engine in
// HadamardQuasigroupProduct: integer grids with empty cells, validated
// Latin squares, transversals, candidate-symbol sets, and a plain-text
// matrix codec.
//
// Conventions, used consistently across the whole module:
//
//   - Orders, rows, columns, and symbols are 1-based. A grid of order n
//     holds symbols in [1..n]; 0 (latin.Empty) marks an empty cell.
//   - Grid and SymbolSet behave like slice headers: copying a value
//     shares the underlying storage, Clone yields an independent copy.
//     Engines clone at every branch point and never hand out aliased
//     state.
//   - Square and Transversal are validated at construction and
//     immutable afterwards.
//
// Validation is split along the error taxonomy: shape and symbol-range
// problems (ErrNotSquare, ErrSymbolRange) are caught when a grid is
// built, the Latin distinctness invariant (ErrDuplicateSymbol) is
// checked by Grid.Validate and by every engine at its public boundary.
//
// The text format read by Parse and produced by Grid.String is one grid
// row per line, symbols separated by blanks, 0 for an empty cell;
// '#' starts a comment, blank lines are skipped:
//
//	# order 3, diagonal fixed
//	2 0 0
//	0 3 0
//	0 0 1
package latin
