package latin

import "errors"

// Sentinel errors for model construction and validation.
// Callers match them with errors.Is; engine packages surface them
// unchanged at their public boundaries.
var (
	// ErrBadOrder indicates a requested order below 1.
	ErrBadOrder = errors.New("latin: order must be at least 1")

	// ErrNotSquare indicates a ragged or non-square input grid.
	ErrNotSquare = errors.New("latin: grid is not square")

	// ErrSymbolRange indicates a symbol outside [0..n] for a grid of order n.
	ErrSymbolRange = errors.New("latin: symbol out of range")

	// ErrDuplicateSymbol indicates two equal non-empty symbols sharing a row or a column.
	ErrDuplicateSymbol = errors.New("latin: duplicate symbol in a row or column")

	// ErrIncomplete indicates a grid with empty cells where a complete square is required.
	ErrIncomplete = errors.New("latin: grid has empty cells")

	// ErrBadTransversal indicates cells that do not form a transversal
	// (wrong count, coordinates out of range, or a repeated row/column).
	ErrBadTransversal = errors.New("latin: cells do not form a transversal")

	// ErrParse indicates malformed matrix or transversal text.
	ErrParse = errors.New("latin: malformed input text")
)
