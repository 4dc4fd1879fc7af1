// Package seed derives the random generator for each run and maintains the
// persisted seed chain that makes a multi-run session exactly replayable.
//
// The seed that determines this run's draws is never exposed; immediately
// after seeding, the manager draws one value and publishes it as the seed
// for the following run. Replaying a seeded session from its initial seed
// therefore reproduces the entire chain of per-run seeds, and with it every
// workload selection and deadline draw.
package seed

import (
	"math/rand"
	"time"

	"github.com/romshuffle/shuffler/internal/session"
	"github.com/romshuffle/shuffler/internal/settings"
)

// ChainRange bounds published chain values to [0, ChainRange).
const ChainRange = 1_000_000

// Manager owns the run's random generator.
type Manager struct {
	rng *rand.Rand
}

// New seeds a generator for this run and publishes the next chain value
// into st.
//
// Seeding depends on the configured mode and the session kind:
//   - Unseeded: wall-clock time, every run.
//   - Seeded, fresh session: the operator-chosen cfg.Seed.
//   - Seeded, resumed session: the chain value persisted by the prior run.
func New(cfg settings.Settings, st *session.State) *Manager {
	var source int64
	switch {
	case cfg.SeedMode != settings.Seeded:
		source = time.Now().UnixNano()
	case st.Fresh():
		source = cfg.Seed
	default:
		source = st.SeedChainValue
	}

	m := &Manager{rng: rand.New(rand.NewSource(source))}
	m.PublishNext(st)
	return m
}

// PublishNext draws one value from the generator and stores it as the seed
// for the next run. Called at startup and again after every swap.
func (m *Manager) PublishNext(st *session.State) {
	st.SeedChainValue = int64(m.rng.Intn(ChainRange))
}

// Rand exposes the run's generator for deadline and selection draws.
func (m *Manager) Rand() *rand.Rand {
	return m.rng
}
