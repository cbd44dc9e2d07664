package isomorphism

import (
	"fmt"
	"sync"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/internal/search"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// collector accumulates mappings across branches.
type collector struct {
	mu   sync.Mutex
	isos []Isomorphism
}

func (c *collector) add(s Isomorphism) {
	c.mu.Lock()
	c.isos = append(c.isos, s)
	c.mu.Unlock()
}

// isoEngine holds one branch's search state. Forked engines share the
// squares, the budget and the collector; sigma, used, trail and queue
// are per branch.
type isoEngine struct {
	n     int
	src   latin.Square
	dst   latin.Square
	sigma []int  // sigma[a] = current image of a, 0 unset
	used  []bool // used[v] marks v as some image already
	trail []int  // assigned arguments in order, for undo
	queue []int  // propagation worklist, reset per episode

	budget *search.Budget
	col    *collector
}

func newIsoEngine(src, dst latin.Square, budget *search.Budget, col *collector) *isoEngine {
	n := src.Order()

	return &isoEngine{
		n:      n,
		src:    src,
		dst:    dst,
		sigma:  make([]int, n+1),
		used:   make([]bool, n+1),
		trail:  make([]int, 0, n),
		budget: budget,
		col:    col,
	}
}

// assign records sigma(a) = v. A clash with an existing image or with
// the bijectivity mask reports false; a fresh assignment lands on the
// trail and the propagation queue.
func (e *isoEngine) assign(a, v int) bool {
	if e.sigma[a] != 0 {
		return e.sigma[a] == v
	}
	if e.used[v] {
		return false
	}
	e.sigma[a] = v
	e.used[v] = true
	e.trail = append(e.trail, a)
	e.queue = append(e.queue, a)

	return true
}

// propagate seeds sigma(a) = v and closes over every equation that the
// growing assignment determines: once sigma is known on i and j, the
// cell equations at (i,j) and (j,i) pin sigma at the source entries.
// False means the branch is contradictory; the caller unwinds via undo.
func (e *isoEngine) propagate(a, v int) bool {
	e.queue = e.queue[:0]
	if !e.assign(a, v) {
		return false
	}
	for len(e.queue) > 0 {
		i := e.queue[len(e.queue)-1]
		e.queue = e.queue[:len(e.queue)-1]
		for j := 1; j <= e.n; j++ {
			if e.sigma[j] == 0 {
				continue
			}
			if !e.assign(e.src.At(i, j), e.dst.At(e.sigma[i], e.sigma[j])) {
				return false
			}
			if !e.assign(e.src.At(j, i), e.dst.At(e.sigma[j], e.sigma[i])) {
				return false
			}
		}
	}

	return true
}

// undo rolls the trail back to mark, clearing images in reverse order.
func (e *isoEngine) undo(mark int) {
	for len(e.trail) > mark {
		a := e.trail[len(e.trail)-1]
		e.trail = e.trail[:len(e.trail)-1]
		e.used[e.sigma[a]] = false
		e.sigma[a] = 0
	}
}

// snapshot copies the complete assignment into an Isomorphism.
func (e *isoEngine) snapshot() Isomorphism {
	out := make([]int, e.n+1)
	copy(out, e.sigma)

	return Isomorphism{images: out}
}

// fork clones the branch state for an independent goroutine. Squares,
// budget and collector stay shared; Square values are immutable.
func (e *isoEngine) fork() *isoEngine {
	out := &isoEngine{
		n:      e.n,
		src:    e.src,
		dst:    e.dst,
		sigma:  make([]int, len(e.sigma)),
		used:   make([]bool, len(e.used)),
		trail:  make([]int, 0, e.n),
		budget: e.budget,
		col:    e.col,
	}
	copy(out.sigma, e.sigma)
	copy(out.used, e.used)

	return out
}

// dfs extends the assignment from argument k upward. Arguments already
// forced by propagation are skipped. Returns false only when the node
// budget runs out, aborting the whole branch.
func (e *isoEngine) dfs(k int) bool {
	for k <= e.n && e.sigma[k] != 0 {
		k++
	}
	if k > e.n {
		e.col.add(e.snapshot())

		return true
	}
	if !e.budget.Spend() {
		return false
	}

	for v := 1; v <= e.n; v++ {
		if e.used[v] {
			continue
		}
		mark := len(e.trail)
		if e.propagate(k, v) {
			if !e.dfs(k + 1) {
				return false
			}
		}
		e.undo(mark)
	}

	return true
}

// All enumerates every bijection sigma of [1..n] with
// l2[sigma(i), sigma(j)] = sigma(l1[i, j]) for all i, j. No such
// mapping is a normal outcome: an empty list and a nil error.
func All(l1, l2 latin.Square, opts Options) ([]Isomorphism, error) {
	if l1.Order() != l2.Order() {
		return nil, fmt.Errorf("%w: %d and %d", ErrOrderMismatch, l1.Order(), l2.Order())
	}

	var (
		budget = search.NewBudget(opts.MaxNodes)
		col    = &collector{}
		e      = newIsoEngine(l1, l2, budget, col)
	)
	runBranches(e, opts.Workers)
	if budget.Exhausted() {
		return col.isos, ErrBudgetExhausted
	}

	return col.isos, nil
}
