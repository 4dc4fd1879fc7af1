// Package engine sequences the rotation: it watches the tick counter,
// fires the swap sequence when the deadline expires, and keeps the
// persisted session and workload records coherent across restarts.
//
// The engine is single-threaded and cooperative. It advances strictly once
// per host tick, and a swap runs to completion inside one tick callback
// before control returns to the host. The swap sequence is not atomic
// across its steps; Start tolerates whatever partial state a crash left
// behind by treating the persisted record as authoritative and re-deriving
// the deadline when it is missing or stale.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/romshuffle/shuffler/internal/host"
	"github.com/romshuffle/shuffler/internal/logging"
	"github.com/romshuffle/shuffler/internal/pool"
	"github.com/romshuffle/shuffler/internal/schedule"
	"github.com/romshuffle/shuffler/internal/seed"
	"github.com/romshuffle/shuffler/internal/session"
	"github.com/romshuffle/shuffler/internal/settings"
	"github.com/romshuffle/shuffler/internal/stats"
)

// ErrEmptyPool is returned when a selection finds no workloads. The caller
// must terminate the process: there is nothing to run.
var ErrEmptyPool = errors.New("no workloads in pool")

// Layout maps a persistence root to the files and directories the engine
// uses.
type Layout struct {
	Root         string
	Roms         string
	Stats        string
	Saves        string
	SessionFile  string
	SettingsFile string
}

// NewLayout derives the standard layout under root.
func NewLayout(root string) Layout {
	return Layout{
		Root:         root,
		Roms:         filepath.Join(root, "roms"),
		Stats:        filepath.Join(root, "stats"),
		Saves:        filepath.Join(root, "saves"),
		SessionFile:  filepath.Join(root, "session.txt"),
		SettingsFile: filepath.Join(root, "settings.txt"),
	}
}

// Scaffold creates the layout's directories.
func (l Layout) Scaffold() error {
	for _, dir := range []string{l.Roms, l.Stats, l.Saves} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// savePath returns the resumable-state file for a workload.
func (l Layout) savePath(workloadFile string) string {
	return filepath.Join(l.Saves, workloadFile+".state")
}

// Engine drives the rotation against a Host.
type Engine struct {
	// Countdown, when set, is called with the seconds remaining to the
	// next swap each time that figure changes.
	Countdown func(secondsRemaining int64)

	cfg    settings.Settings
	st     *session.State
	seeds  *seed.Manager
	host   host.Host
	layout Layout

	// baseTicks carries the run-scoped tick mirror across a resume, where
	// the host counter restarts at zero but the mirror must not go back.
	baseTicks int64

	swapping bool
	swaps    int
}

// New wires an engine. Call Start before Run or Tick.
func New(layout Layout, cfg settings.Settings, st *session.State, seeds *seed.Manager, h host.Host) *Engine {
	return &Engine{
		cfg:    cfg,
		st:     st,
		seeds:  seeds,
		host:   h,
		layout: layout,
	}
}

// Start activates the initial workload and establishes the first deadline.
//
// A fresh session (or one whose recorded workload has disappeared) draws an
// initial workload from the pool. A resumed session reactivates the
// recorded workload and restores its resumable state, best effort. In both
// cases the deadline is re-derived when the persisted one is missing or
// already expired, so resumption after a mid-swap crash converges instead
// of trusting a completion marker that does not exist.
func (e *Engine) Start() error {
	if err := e.layout.Scaffold(); err != nil {
		return err
	}

	entries, err := pool.List(e.layout.Roms, pool.DisallowedExtensions)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrEmptyPool
	}

	file := e.st.CurrentWorkloadFile
	replaced := file == "" || !slices.Contains(entries, file)
	if replaced {
		file = entries[e.seeds.Rand().Intn(len(entries))]
		e.st.TickCount = 0
		e.st.PlayTimeSeconds = 0
	}

	if err := e.activate(file); err != nil {
		return err
	}
	e.baseTicks = e.st.TickCount

	// A replacement workload starts a new stint, so a deadline carried over
	// from the vanished workload would overshoot the configured interval.
	if replaced || e.st.SwapDeadlineTicks <= e.st.TickCount {
		e.st.SwapDeadlineTicks = e.st.TickCount +
			schedule.NextDeadline(e.cfg.MinSwapInterval, e.cfg.MaxSwapInterval, e.cfg.TicksPerSecond, e.seeds.Rand())
	}

	e.st.MarkResumed()
	if err := e.st.Save(e.layout.SessionFile); err != nil {
		return err
	}

	logging.Debug("started with %q, deadline at tick %d", file, e.st.SwapDeadlineTicks)
	return nil
}

// activate switches the host to workloadFile, restores its resumable state,
// records the activation, and refreshes the session identity fields.
func (e *Engine) activate(workloadFile string) error {
	if err := e.host.ActivateWorkload(filepath.Join(e.layout.Roms, workloadFile)); err != nil {
		return fmt.Errorf("activate %s: %w", workloadFile, err)
	}
	// Best effort: a workload with no saved state starts from scratch.
	_ = e.host.LoadResumableState(e.layout.savePath(workloadFile))

	name := e.host.CurrentWorkloadDisplayName()
	platform := e.host.CurrentPlatformID()

	if _, err := stats.RecordActivation(e.layout.Stats, workloadFile, name, platform); err != nil {
		return err
	}

	e.st.CurrentWorkloadFile = workloadFile
	e.st.CurrentWorkloadName = name
	e.st.CurrentPlatformID = platform
	e.st.TotalActivationCount++
	e.st.ActivationCount++
	return nil
}

// Tick advances the engine by one host tick. It returns true when a swap
// completed during this call.
func (e *Engine) Tick() (bool, error) {
	e.st.TickCount = e.baseTicks + e.host.CurrentTick()
	e.st.PlayTimeSeconds = e.st.TickCount / int64(e.cfg.TicksPerSecond)

	if e.swapping || e.st.TickCount < e.st.SwapDeadlineTicks {
		return false, nil
	}
	return e.swap()
}

// swap runs the full swap sequence. A NoSwap selection aborts silently and
// leaves all state untouched.
func (e *Engine) swap() (bool, error) {
	e.swapping = true
	defer func() { e.swapping = false }()

	outgoing := e.st.CurrentWorkloadFile
	outgoingTicks := e.st.TickCount
	outgoingPlay := e.st.PlayTimeSeconds

	// Selection runs before any flush so a NoSwap outcome leaves every
	// record untouched.
	entries, err := pool.List(e.layout.Roms, pool.DisallowedExtensions)
	if err != nil {
		return false, err
	}
	idx, result := pool.SelectNext(entries, pool.Name(outgoing), e.seeds.Rand())
	switch result {
	case pool.Fatal:
		return false, ErrEmptyPool
	case pool.NoSwap:
		logging.Debug("single workload in pool, skipping swap")
		return false, nil
	}
	incoming := entries[idx]

	if err := stats.FlushOutgoing(e.layout.Stats, outgoing, stats.RunCounters{
		Ticks:       outgoingTicks,
		PlaySeconds: outgoingPlay,
	}); err != nil {
		return false, err
	}

	if err := e.host.SaveResumableState(e.layout.savePath(outgoing)); err != nil {
		logging.Warn("could not save resumable state for %s: %v", outgoing, err)
	}

	e.baseTicks = 0
	e.st.TickCount = 0
	e.st.PlayTimeSeconds = 0
	if err := e.activate(incoming); err != nil {
		return false, err
	}

	e.st.TotalSwapCount++
	e.st.SwapCount++
	e.st.TotalTickCount += outgoingTicks
	e.st.TotalPlayTimeSeconds += outgoingPlay

	e.st.SwapDeadlineTicks = schedule.NextDeadline(e.cfg.MinSwapInterval, e.cfg.MaxSwapInterval, e.cfg.TicksPerSecond, e.seeds.Rand())
	e.seeds.PublishNext(e.st)

	if err := e.st.Save(e.layout.SessionFile); err != nil {
		return false, err
	}

	e.swaps++
	logging.Success("%s -> %s (swap %d, next in %s)",
		pool.Name(outgoing), e.st.CurrentWorkloadName, e.st.TotalSwapCount,
		logging.FormatDuration(e.st.SwapDeadlineTicks/int64(e.cfg.TicksPerSecond)))
	return true, nil
}

// Run drives the tick loop until ctx is cancelled, a fatal error occurs,
// or maxSwaps swaps have completed (0 means no cap).
func (e *Engine) Run(ctx context.Context, maxSwaps int) error {
	lastShown := int64(-1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		swapped, err := e.Tick()
		if err != nil {
			return err
		}

		if swapped {
			lastShown = -1
			if e.cfg.PauseDelayMs >= 0 {
				// Masks the audio/visual glitch of the switch; deliberately
				// blocks the single thread and is not interruptible.
				time.Sleep(time.Duration(e.cfg.PauseDelayMs) * time.Millisecond)
			}
			if maxSwaps > 0 && e.swaps >= maxSwaps {
				return nil
			}
		} else if e.cfg.ShowCountdown && e.Countdown != nil {
			remaining := (e.st.SwapDeadlineTicks - e.st.TickCount) / int64(e.cfg.TicksPerSecond)
			if remaining < 0 {
				// An expired deadline over a single-entry pool keeps ticking
				// without swapping; hold the display at zero.
				remaining = 0
			}
			if remaining != lastShown {
				e.Countdown(remaining)
				lastShown = remaining
			}
		}

		e.host.AdvanceOneTick()
	}
}

// SaveSession flushes the in-memory session record, typically on interrupt.
func (e *Engine) SaveSession() error {
	return e.st.Save(e.layout.SessionFile)
}
