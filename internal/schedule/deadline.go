// Package schedule computes swap deadlines from the configured interval
// bounds and the current tick rate.
package schedule

import "math/rand"

// NextDeadline converts the interval bounds to tick counts and returns the
// tick at which the next swap fires, relative to a zeroed run counter.
//
// Equal bounds give a fixed interval: the deadline is exactly that tick
// count, with no draw from the generator. Otherwise the deadline is drawn
// uniformly from [minTicks, maxTicks] inclusive. Invoked once at startup
// and once after every swap.
func NextDeadline(minInterval, maxInterval, ticksPerSecond int, rng *rand.Rand) int64 {
	minTicks := int64(minInterval) * int64(ticksPerSecond)
	maxTicks := int64(maxInterval) * int64(ticksPerSecond)

	if maxTicks <= minTicks {
		return minTicks
	}
	return minTicks + rng.Int63n(maxTicks-minTicks+1)
}
