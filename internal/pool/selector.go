package pool

import "math/rand"

// Result classifies the outcome of a selection.
type Result int

const (
	// Swap: a next workload was chosen; the index is valid.
	Swap Result = iota
	// NoSwap: the pool has a single entry, nothing to rotate to. The caller
	// skips the swap silently without mutating state.
	NoSwap
	// Fatal: the pool is empty. The caller must terminate the process.
	Fatal
)

// maxRedraws bounds the repeat-avoidance loop. With at least two distinct
// names in the pool the chance of exhausting the bound is (1/2)^64 or
// better; a pool made entirely of identically-named copies of the current
// workload accepts the final draw instead of looping forever.
const maxRedraws = 64

// SelectNext draws the next workload index uniformly from pool, avoiding an
// immediate repeat of currentName. The returned index is meaningful only
// when Result is Swap.
func SelectNext(pool []string, currentName string, rng *rand.Rand) (int, Result) {
	switch len(pool) {
	case 0:
		return 0, Fatal
	case 1:
		return 0, NoSwap
	}

	idx := rng.Intn(len(pool))
	for attempt := 0; attempt < maxRedraws && Name(pool[idx]) == currentName; attempt++ {
		idx = rng.Intn(len(pool))
	}
	return idx, Swap
}
