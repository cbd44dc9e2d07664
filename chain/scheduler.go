package chain

import (
	"errors"
	"fmt"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/completion"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// ErrUndefinedDiagonal indicates an empty diagonal cell; the base
// transversal of the chain is read off the diagonal and cannot be
// built without it.
var ErrUndefinedDiagonal = errors.New("chain: base transversal undefined (empty diagonal cell)")

// Options tunes the scheduler. MaxNodes and Workers are handed to each
// constituent transversal-fill and completion search (see
// completion.Options); the worklist itself runs sequentially.
type Options struct {
	MaxNodes int64
	Workers  int
}

// DefaultOptions mirrors completion.DefaultOptions.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// state is one worklist entry: a grid whose transversal tr is fully
// assigned, plus that transversal.
type state struct {
	g  latin.Grid
	tr latin.Transversal
}

// Squares enumerates every Latin square reachable from p by filling
// the chain of transversals derived from its diagonal, the union taken
// over all branches and deduplicated.
//
// Every diagonal cell of p must be non-empty (ErrUndefinedDiagonal)
// and the diagonal symbols must form a permutation, since they are the
// column pattern of the whole chain (latin.ErrBadTransversal). A grid
// violating the partial-Latin invariant fails with
// latin.ErrDuplicateSymbol before any search. Branches whose chain dies
// out are dropped silently; no reachable square at all yields an empty
// list and no error. completion.ErrBudgetExhausted propagates unchanged
// when a constituent search runs out of nodes.
func Squares(p latin.Grid, opts Options) ([]latin.Square, error) {
	g := p.Clone()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// Read the diagonal; it fixes the column of every chain cell.
	var (
		n    = g.Order()
		diag = make([]int, n+1)
		i, d int
	)
	for i = 1; i <= n; i++ {
		if d = g.At(i, i); d == latin.Empty {
			return nil, fmt.Errorf("%w: cell (%d,%d)", ErrUndefinedDiagonal, i, i)
		}
		diag[i] = d
	}

	// Base transversal: T0[i] = (row P[d,d], col d) with d = P[i,i].
	// The diagonal cells (d,d) are themselves diagonal, hence assigned.
	cells := make([]latin.Cell, n)
	for i = 1; i <= n; i++ {
		cells[i-1] = latin.Cell{Row: g.At(diag[i], diag[i]), Col: diag[i]}
	}
	t0, err := latin.NewTransversal(cells)
	if err != nil {
		return nil, fmt.Errorf("chain: base transversal: %w", err)
	}

	var (
		fillOpts = completion.Options{MaxNodes: opts.MaxNodes, Workers: opts.Workers}
		work     []state
		seen     = make(map[string]struct{})
	)
	push := func(q latin.Grid, tr latin.Transversal) {
		key := q.String() + "|" + tr.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		work = append(work, state{g: q, tr: tr})
	}

	fills, err := completion.FillTransversal(g, t0, fillOpts)
	if err != nil {
		return nil, err
	}
	for _, q := range fills {
		push(q, t0)
	}

	// Drive the worklist. Popped states always carry a fully assigned
	// transversal, so the successor coordinates are well-defined.
	var (
		completes    []latin.Grid
		completeSeen = make(map[string]struct{})
	)
	for len(work) > 0 {
		st := work[len(work)-1]
		work = work[:len(work)-1]

		// Successor transversal: row moves to the symbol at the current
		// cell, the column pattern stays put.
		var (
			next     = make([]latin.Cell, n)
			assigned = true
			c        latin.Cell
		)
		for i = 1; i <= n; i++ {
			c = st.tr.At(i)
			next[i-1] = latin.Cell{Row: st.g.At(c.Row, diag[i]), Col: c.Col}
			if st.g.At(next[i-1].Row, next[i-1].Col) == latin.Empty {
				assigned = false
			}
		}

		if assigned {
			key := st.g.String()
			if _, ok := completeSeen[key]; !ok {
				completeSeen[key] = struct{}{}
				completes = append(completes, st.g)
			}

			continue
		}

		tr, terr := latin.NewTransversal(next)
		if terr != nil {
			// Degenerate successor (repeated fixed symbols upstream):
			// the branch cannot certify stability, prune it.
			continue
		}
		fills, err = completion.FillTransversal(st.g, tr, fillOpts)
		if err != nil {
			return nil, err
		}
		for _, q := range fills {
			push(q, tr)
		}
	}

	// Completion phase: union of all full completions of the
	// chain-complete grids.
	var (
		out     []latin.Square
		outSeen = make(map[string]struct{})
	)
	for _, q := range completes {
		squares, cerr := completion.Complete(q, fillOpts)
		if cerr != nil {
			return out, cerr
		}
		for _, sq := range squares {
			key := sq.String()
			if _, ok := outSeen[key]; ok {
				continue
			}
			outSeen[key] = struct{}{}
			out = append(out, sq)
		}
	}

	return out, nil
}
