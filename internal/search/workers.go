package search

import "runtime"

// maxAutoWorkers caps the pool size chosen automatically; combinatorial
// branches are short-lived and oversubscription only adds contention.
const maxAutoWorkers = 8

// Workers resolves a requested worker count against the number of
// available first-level branches: 0 picks min(NumCPU, 8), anything
// below 1 falls back to sequential, and the result never exceeds tasks.
func Workers(requested, tasks int) int {
	if tasks < 1 {
		tasks = 1
	}
	w := requested
	if w == 0 {
		w = runtime.NumCPU()
		if w > maxAutoWorkers {
			w = maxAutoWorkers
		}
	}
	if w < 1 {
		w = 1
	}
	if w > tasks {
		w = tasks
	}

	return w
}
