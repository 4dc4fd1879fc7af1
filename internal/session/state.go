// Package session holds the persisted session record: current workload
// identity, swap deadline, seed chain value, and the durable counters that
// survive process restarts.
package session

import (
	"fmt"

	"github.com/romshuffle/shuffler/internal/kv"
)

// FreshSessionKind is the sessionKind value of a session with no prior
// persisted state. Any larger value marks a resumed session.
const FreshSessionKind = 1

// State is the mutable, persisted session record.
//
// The Total* counters are monotonically non-decreasing across the whole
// session history. TickCount, PlayTimeSeconds, SwapCount, and
// ActivationCount are run-scoped mirrors that feed the per-workload stats
// at swap time.
type State struct {
	SessionKind          int64
	CurrentWorkloadName  string
	CurrentWorkloadFile  string
	CurrentPlatformID    string
	SwapDeadlineTicks    int64
	SeedChainValue       int64
	TotalSwapCount       int64
	TotalActivationCount int64
	TotalTickCount       int64
	TotalPlayTimeSeconds int64
	TickCount            int64
	PlayTimeSeconds      int64
	SwapCount            int64
	ActivationCount      int64
}

// Fresh reports whether this session has no prior persisted state.
func (s *State) Fresh() bool {
	return s.SessionKind <= FreshSessionKind
}

// MarkResumed bumps the session kind so the next run observes a resumed
// session. Called once per run, before the first save.
func (s *State) MarkResumed() {
	s.SessionKind++
}

// Load reads the session record at path. A missing file yields a fresh
// state, not an error. Fields absent from the file keep their zero value so
// resumption never trusts a marker that was not actually persisted.
func Load(path string) (*State, error) {
	entries, ok, err := kv.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return &State{SessionKind: FreshSessionKind}, nil
	}

	s := &State{SessionKind: FreshSessionKind}
	for key, value := range entries {
		switch key {
		case "sessionKind":
			s.SessionKind = value.Int()
		case "currentWorkloadName":
			s.CurrentWorkloadName = value.Encode()
		case "currentWorkloadFile":
			s.CurrentWorkloadFile = value.Encode()
		case "currentPlatformId":
			s.CurrentPlatformID = value.Encode()
		case "swapDeadlineTicks":
			s.SwapDeadlineTicks = value.Int()
		case "seedChainValue":
			s.SeedChainValue = value.Int()
		case "totalSwapCount":
			s.TotalSwapCount = value.Int()
		case "totalActivationCount":
			s.TotalActivationCount = value.Int()
		case "totalTickCount":
			s.TotalTickCount = value.Int()
		case "totalPlayTimeSeconds":
			s.TotalPlayTimeSeconds = value.Int()
		case "tickCount":
			s.TickCount = value.Int()
		case "playTimeSeconds":
			s.PlayTimeSeconds = value.Int()
		case "swapCount":
			s.SwapCount = value.Int()
		case "activationCount":
			s.ActivationCount = value.Int()
		}
	}
	return s, nil
}

// Save persists the session record to path, truncating any previous file.
// A write failure is returned to the caller and must be treated as fatal:
// continuing with unflushed state breaks the resumption invariant.
func (s *State) Save(path string) error {
	entries := map[string]kv.Value{
		"sessionKind":          kv.NumberValue(float64(s.SessionKind)),
		"currentWorkloadName":  kv.StringValue(s.CurrentWorkloadName),
		"currentWorkloadFile":  kv.StringValue(s.CurrentWorkloadFile),
		"currentPlatformId":    kv.StringValue(s.CurrentPlatformID),
		"swapDeadlineTicks":    kv.NumberValue(float64(s.SwapDeadlineTicks)),
		"seedChainValue":       kv.NumberValue(float64(s.SeedChainValue)),
		"totalSwapCount":       kv.NumberValue(float64(s.TotalSwapCount)),
		"totalActivationCount": kv.NumberValue(float64(s.TotalActivationCount)),
		"totalTickCount":       kv.NumberValue(float64(s.TotalTickCount)),
		"totalPlayTimeSeconds": kv.NumberValue(float64(s.TotalPlayTimeSeconds)),
		"tickCount":            kv.NumberValue(float64(s.TickCount)),
		"playTimeSeconds":      kv.NumberValue(float64(s.PlayTimeSeconds)),
		"swapCount":            kv.NumberValue(float64(s.SwapCount)),
		"activationCount":      kv.NumberValue(float64(s.ActivationCount)),
	}
	if err := kv.Save(path, entries); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
