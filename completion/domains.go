package completion

import (
	"sync"
	"sync/atomic"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/internal/search"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// peerMode selects which open cells constrain each other beyond the
// fixed symbols already on the grid.
type peerMode int

const (
	// peerRowCol links open cells sharing a row or a column (full
	// completion).
	peerRowCol peerMode = iota
	// peerAll links every pair of open cells (transversal filling,
	// where all transversal symbols must be pairwise distinct).
	peerAll
)

// change records one domain removal for trail-based undo.
type change struct {
	slot int
	v    int
}

// collector gathers solution grids from all branches of one search.
type collector struct {
	mu    sync.Mutex
	grids []latin.Grid
	limit int
	full  atomic.Bool
}

// add stores an already-cloned solution unless the limit was reached.
func (c *collector) add(g latin.Grid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.limit > 0 && len(c.grids) >= c.limit {
		return
	}
	c.grids = append(c.grids, g)
	if c.limit > 0 && len(c.grids) == c.limit {
		c.full.Store(true)
	}
}

// isFull reports whether the solution limit was reached.
func (c *collector) isFull() bool { return c.full.Load() }

// fillEngine is the mutable state of one search branch. cells and
// peers are immutable after construction and shared between forks;
// grid, doms, assigned, and the trail are private per branch.
type fillEngine struct {
	n     int
	grid  latin.Grid
	cells []latin.Cell      // open target cells, fixed order
	doms  []latin.SymbolSet // current domain per target
	peers [][]int           // per target: slots it must differ from

	assigned []bool
	left     int
	trail    []change

	budget *search.Budget
	col    *collector
}

// newFillEngine builds the engine for the given open cells of g.
// Domains start from Grid.Candidates, thinned by banned (symbols
// excluded everywhere, e.g. values already fixed on the transversal).
// Returns ok=false if some open cell has no candidate at all.
func newFillEngine(g latin.Grid, cells []latin.Cell, mode peerMode, banned latin.SymbolSet, budget *search.Budget, col *collector) (*fillEngine, bool) {
	var (
		n = g.Order()
		e = &fillEngine{
			n:        n,
			grid:     g,
			cells:    cells,
			doms:     make([]latin.SymbolSet, len(cells)),
			peers:    make([][]int, len(cells)),
			assigned: make([]bool, len(cells)),
			left:     len(cells),
			budget:   budget,
			col:      col,
		}
		i, j int
	)
	for i = range cells {
		d := g.Candidates(cells[i])
		banned.ForEach(func(v int) bool {
			d.Remove(v)

			return true
		})
		if d.IsEmpty() {
			return nil, false
		}
		e.doms[i] = d
	}
	for i = range cells {
		for j = range cells {
			if i == j {
				continue
			}
			if mode == peerAll || cells[i].Row == cells[j].Row || cells[i].Col == cells[j].Col {
				e.peers[i] = append(e.peers[i], j)
			}
		}
	}

	return e, true
}

// assign fixes symbol v at slot and propagates the removal to every
// open peer. Returns false if a peer domain empties; the caller must
// undo back to its trail mark in either case.
func (e *fillEngine) assign(slot, v int) bool {
	e.grid.Set(e.cells[slot].Row, e.cells[slot].Col, v)
	e.assigned[slot] = true
	e.left--
	for _, p := range e.peers[slot] {
		if e.assigned[p] || !e.doms[p].Has(v) {
			continue
		}
		e.doms[p].Remove(v)
		e.trail = append(e.trail, change{slot: p, v: v})
		if e.doms[p].IsEmpty() {
			return false
		}
	}

	return true
}

// undo reverts every domain removal past mark and the assignment at slot.
func (e *fillEngine) undo(mark, slot int) {
	for i := len(e.trail) - 1; i >= mark; i-- {
		e.doms[e.trail[i].slot].Add(e.trail[i].v)
	}
	e.trail = e.trail[:mark]
	e.grid.Set(e.cells[slot].Row, e.cells[slot].Col, latin.Empty)
	e.assigned[slot] = false
	e.left++
}

// pickSlot returns an open slot with the smallest current domain.
func (e *fillEngine) pickSlot() int {
	var (
		best  = -1
		bestN = e.n + 1
		i, k  int
	)
	for i = range e.cells {
		if e.assigned[i] {
			continue
		}
		if k = e.doms[i].Count(); k < bestN {
			best, bestN = i, k
			if k <= 1 {
				break
			}
		}
	}

	return best
}

// fork deep-copies the mutable branch state; the budget and collector
// stay shared, cells and peers are immutable anyway.
func (e *fillEngine) fork() *fillEngine {
	cp := &fillEngine{
		n:        e.n,
		grid:     e.grid.Clone(),
		cells:    e.cells,
		doms:     make([]latin.SymbolSet, len(e.doms)),
		peers:    e.peers,
		assigned: make([]bool, len(e.assigned)),
		left:     e.left,
		budget:   e.budget,
		col:      e.col,
	}
	for i := range e.doms {
		cp.doms[i] = e.doms[i].Clone()
	}
	copy(cp.assigned, e.assigned)

	return cp
}
