package completion

import (
	"golang.org/x/sync/errgroup"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/internal/search"
)

// runBranches drives the search sequentially, or fans the first-level
// branches out over a bounded worker group. Every branch runs on a
// forked engine, so grids and domains are never shared; the budget and
// collector are the only shared state and both are concurrency-safe.
func runBranches(e *fillEngine, workers int) {
	var (
		slot   = e.pickSlot()
		values = e.doms[slot].Values()
		w      = search.Workers(workers, len(values))
	)
	if w <= 1 {
		e.dfs()

		return
	}

	var grp errgroup.Group
	grp.SetLimit(w)
	for _, v := range values {
		branch, val := e.fork(), v
		grp.Go(func() error {
			if branch.assign(slot, val) {
				branch.dfs()
			}

			return nil
		})
	}
	_ = grp.Wait()
}
