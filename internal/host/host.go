// Package host defines the execution runtime the engine drives: the
// collaborator that actually runs workloads, counts ticks, and saves and
// restores resumable workload state.
//
// The engine is host-agnostic. An emulator integration implements Host;
// Sim is the in-process implementation used by the CLI and the tests.
package host

// Host is the abstract execution runtime contract.
type Host interface {
	// CurrentTick returns the monotonic per-run tick counter. It resets to
	// zero on workload activation.
	CurrentTick() int64

	// AdvanceOneTick yields until the next tick. This is the engine's only
	// yield point.
	AdvanceOneTick()

	// ActivateWorkload deactivates the running workload, if any, and starts
	// the one at path.
	ActivateWorkload(path string) error

	// SaveResumableState persists the running workload's resumable state to
	// path. Best effort.
	SaveResumableState(path string) error

	// LoadResumableState restores resumable state from path. Best effort;
	// a missing file is silently ignored by callers.
	LoadResumableState(path string) error

	// CurrentWorkloadDisplayName returns the running workload's
	// human-readable name.
	CurrentWorkloadDisplayName() string

	// CurrentPlatformID identifies the platform of the running workload.
	CurrentPlatformID() string
}
