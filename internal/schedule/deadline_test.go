package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/romshuffle/shuffler/internal/schedule"
)

func TestFixedIntervalReturnsExactTickCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(300), schedule.NextDeadline(5, 5, 60, rng))
	}
}

func TestRandomIntervalStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		d := schedule.NextDeadline(2, 10, 60, rng)
		assert.GreaterOrEqual(t, d, int64(120))
		assert.LessOrEqual(t, d, int64(600))
	}
}

func TestRandomIntervalCoversBothBounds(t *testing.T) {
	// Inclusive bounds: with a narrow range both endpoints show up quickly.
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		seen[schedule.NextDeadline(1, 2, 2, rng)] = true
	}
	assert.True(t, seen[2], "minTicks should be drawable")
	assert.True(t, seen[4], "maxTicks should be drawable")
}

func TestDeterministicWithSeededGenerator(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		assert.Equal(t,
			schedule.NextDeadline(2, 10, 60, a),
			schedule.NextDeadline(2, 10, 60, b))
	}
}

func TestTickRateScalesDeadline(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, int64(60), schedule.NextDeadline(1, 1, 60, rng))
	assert.Equal(t, int64(30), schedule.NextDeadline(1, 1, 30, rng))
}
