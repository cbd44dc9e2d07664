package completion

import (
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/internal/search"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// dfs explores every assignment of the remaining open cells. It
// returns false as soon as the search must stop globally (budget gone
// or solution limit reached); dead branches just return true after
// exhausting their alternatives.
func (e *fillEngine) dfs() bool {
	if e.col.isFull() {
		return false
	}
	if !e.budget.Spend() {
		return false
	}
	if e.left == 0 {
		e.col.add(e.grid.Clone())

		return !e.col.isFull()
	}

	var (
		slot = e.pickSlot()
		cont = true
	)
	e.doms[slot].ForEach(func(v int) bool {
		mark := len(e.trail)
		if e.assign(slot, v) {
			cont = e.dfs()
		}
		e.undo(mark, slot)

		return cont
	})

	return cont
}

// Complete enumerates every Latin square extending p: all empty cells
// assigned, fixed cells untouched, each row and column a permutation
// of [1..n]. The enumeration is exhaustive unless opts.Limit or
// opts.MaxNodes cuts it short (the latter adds ErrBudgetExhausted).
//
// A grid violating the partial-Latin invariant fails with
// latin.ErrDuplicateSymbol before any search. A grid with no
// completion yields an empty list and no error.
func Complete(p latin.Grid, opts Options) ([]latin.Square, error) {
	g := p.Clone()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// A complete valid grid is its own single completion.
	open := g.EmptyCells()
	if len(open) == 0 {
		sq, err := g.ToSquare()
		if err != nil {
			return nil, err
		}

		return []latin.Square{sq}, nil
	}

	var (
		budget  = search.NewBudget(opts.MaxNodes)
		col     = &collector{limit: opts.Limit}
		e, okay = newFillEngine(g, open, peerRowCol, latin.SymbolSet{}, budget, col)
	)
	if !okay {
		return nil, nil
	}
	runBranches(e, opts.Workers)

	out := make([]latin.Square, 0, len(col.grids))
	for _, sol := range col.grids {
		sq, err := sol.ToSquare()
		if err != nil {
			return nil, err
		}
		out = append(out, sq)
	}
	if budget.Exhausted() {
		return out, ErrBudgetExhausted
	}

	return out, nil
}
