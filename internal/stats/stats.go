// Package stats maintains the durable per-workload counters, one record per
// workload file under the stats directory of the persistence root.
//
// All operations are accumulate-and-persist with no retry: a write failure
// propagates to the caller and aborts the run, since silent data loss would
// corrupt resumption.
package stats

import (
	"fmt"
	"path/filepath"

	"github.com/romshuffle/shuffler/internal/kv"
)

// WorkloadStats is the persisted record for one workload, keyed by its
// filename.
type WorkloadStats struct {
	WorkloadName    string
	PlatformID      string
	SwapCount       int64
	ActivationCount int64
	TickCount       int64
	PlayTimeSeconds int64
}

// RunCounters carries the current run's deltas added into a record at swap
// time.
type RunCounters struct {
	Ticks       int64
	PlaySeconds int64
}

// recordPath maps a workload filename to its stats file.
func recordPath(dir, workloadFile string) string {
	return filepath.Join(dir, workloadFile+".txt")
}

// Load reads the record for workloadFile, lazily creating a default record
// when none exists yet. A freshly created record starts with
// ActivationCount 1 and all other counters at zero. The returned bool
// reports whether a record existed on disk.
func Load(dir, workloadFile string) (*WorkloadStats, bool, error) {
	entries, ok, err := kv.Load(recordPath(dir, workloadFile))
	if err != nil {
		return nil, false, fmt.Errorf("load workload stats: %w", err)
	}
	if !ok {
		return &WorkloadStats{ActivationCount: 1}, false, nil
	}

	w := &WorkloadStats{}
	for key, value := range entries {
		switch key {
		case "workloadName":
			w.WorkloadName = value.Encode()
		case "platformId":
			w.PlatformID = value.Encode()
		case "swapCount":
			w.SwapCount = value.Int()
		case "activationCount":
			w.ActivationCount = value.Int()
		case "tickCount":
			w.TickCount = value.Int()
		case "playTimeSeconds":
			w.PlayTimeSeconds = value.Int()
		}
	}
	return w, true, nil
}

// Save writes the record for workloadFile.
func (w *WorkloadStats) Save(dir, workloadFile string) error {
	entries := map[string]kv.Value{
		"workloadName":    kv.StringValue(w.WorkloadName),
		"platformId":      kv.StringValue(w.PlatformID),
		"swapCount":       kv.NumberValue(float64(w.SwapCount)),
		"activationCount": kv.NumberValue(float64(w.ActivationCount)),
		"tickCount":       kv.NumberValue(float64(w.TickCount)),
		"playTimeSeconds": kv.NumberValue(float64(w.PlayTimeSeconds)),
	}
	if err := kv.Save(recordPath(dir, workloadFile), entries); err != nil {
		return fmt.Errorf("save workload stats: %w", err)
	}
	return nil
}

// FlushOutgoing folds the outgoing workload's run deltas into its record at
// swap time: tick and play-time deltas are added and the swap count is
// incremented by one.
func FlushOutgoing(dir, workloadFile string, run RunCounters) error {
	w, _, err := Load(dir, workloadFile)
	if err != nil {
		return err
	}
	w.TickCount += run.Ticks
	w.PlayTimeSeconds += run.PlaySeconds
	w.SwapCount++
	return w.Save(dir, workloadFile)
}

// RecordActivation loads or creates the record for a newly activated
// workload, counts the activation, and refreshes the last-known identity
// fields. A lazily created record already counts its first activation.
// Returns the updated record.
func RecordActivation(dir, workloadFile, name, platformID string) (*WorkloadStats, error) {
	w, existed, err := Load(dir, workloadFile)
	if err != nil {
		return nil, err
	}
	if existed {
		w.ActivationCount++
	}
	w.WorkloadName = name
	w.PlatformID = platformID
	if err := w.Save(dir, workloadFile); err != nil {
		return nil, err
	}
	return w, nil
}
