package isomorphism

import (
	"golang.org/x/sync/errgroup"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/internal/search"
)

// runBranches explores the choices for sigma(1), sequentially or with
// one forked engine per top-level value. Branch results meet only in
// the shared collector and budget.
func runBranches(e *isoEngine, workers int) {
	w := search.Workers(workers, e.n)
	if w <= 1 {
		e.dfs(1)

		return
	}

	var grp errgroup.Group
	grp.SetLimit(w)
	for v := 1; v <= e.n; v++ {
		branch, val := e.fork(), v
		grp.Go(func() error {
			if branch.propagate(1, val) {
				branch.dfs(2)
			}

			return nil
		})
	}
	_ = grp.Wait()
}
