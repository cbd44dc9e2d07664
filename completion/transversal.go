package completion

import (
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/internal/search"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// FillTransversal enumerates every way to fill the still-empty cells
// of t in p such that all n transversal cells hold pairwise distinct
// symbols, each consistent with the fixed symbols of its row and
// column. Cells outside t are never touched, so results are partial
// squares in general, not complete ones.
//
// When t is already fully assigned in p the result is exactly the
// singleton [p]. When the fixed transversal symbols alone rule out any
// filling, the result is an empty list and no error.
func FillTransversal(p latin.Grid, t latin.Transversal, opts Options) ([]latin.Grid, error) {
	g := p.Clone()
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if t.Order() != g.Order() {
		return nil, ErrOrderMismatch
	}

	// Collect the open target cells; a fully assigned transversal
	// short-circuits to the singleton result.
	var (
		open []latin.Cell
		v    int
	)
	for i := 1; i <= t.Order(); i++ {
		c := t.At(i)
		if g.At(c.Row, c.Col) == latin.Empty {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return []latin.Grid{g}, nil
	}

	// Fixed transversal symbols ban values everywhere on t. Two fixed
	// cells sharing a symbol rule out any distinct filling.
	fixed := latin.NoSymbols(g.Order())
	for i := 1; i <= t.Order(); i++ {
		c := t.At(i)
		if v = g.At(c.Row, c.Col); v == latin.Empty {
			continue
		}
		if fixed.Has(v) {
			return nil, nil
		}
		fixed.Add(v)
	}

	var (
		budget  = search.NewBudget(opts.MaxNodes)
		col     = &collector{limit: opts.Limit}
		e, okay = newFillEngine(g, open, peerAll, fixed, budget, col)
	)
	if !okay {
		return nil, nil
	}
	runBranches(e, opts.Workers)

	if budget.Exhausted() {
		return col.grids, ErrBudgetExhausted
	}

	return col.grids, nil
}
