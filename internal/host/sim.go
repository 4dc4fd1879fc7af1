package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// platformByExtension maps workload file extensions to platform ids, the
// way an emulator's auto-detection would.
var platformByExtension = map[string]string{
	".nes": "NES",
	".smc": "SNES",
	".sfc": "SNES",
	".gb":  "GB",
	".gbc": "GBC",
	".gba": "GBA",
	".md":  "Genesis",
	".gen": "Genesis",
	".pce": "PCEngine",
}

// Sim is an in-process Host: a fake emulator that derives workload identity
// from the filename and keeps a running progress counter as its resumable
// state. It lets the engine run end to end without a real emulator
// attached.
//
// The tick counter resets to zero on every activation and is never restored
// from resumable state; resumable state stands in for the game's own save
// state, which is orthogonal to swap timing.
type Sim struct {
	// TickDuration paces AdvanceOneTick. Zero means no pacing (tests).
	TickDuration time.Duration

	tick     int64
	progress int64
	workload string
}

// CurrentTick returns the ticks elapsed since the last activation.
func (s *Sim) CurrentTick() int64 {
	return s.tick
}

// AdvanceOneTick advances the tick and progress counters, sleeping
// TickDuration if set.
func (s *Sim) AdvanceOneTick() {
	if s.TickDuration > 0 {
		time.Sleep(s.TickDuration)
	}
	s.tick++
	s.progress++
}

// ActivateWorkload switches to the workload at path, resetting the tick and
// progress counters.
func (s *Sim) ActivateWorkload(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("activate workload: %w", err)
	}
	s.workload = path
	s.tick = 0
	s.progress = 0
	return nil
}

// SaveResumableState writes the progress counter to path.
func (s *Sim) SaveResumableState(path string) error {
	if s.workload == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save resumable state: %w", err)
	}
	data := strconv.FormatInt(s.progress, 10) + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("save resumable state: %w", err)
	}
	return nil
}

// LoadResumableState restores the progress counter from path. A missing or
// unreadable file leaves the counter untouched.
func (s *Sim) LoadResumableState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load resumable state: %w", err)
	}
	progress, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return nil
	}
	s.progress = progress
	return nil
}

// Progress exposes the simulated game progress for inspection.
func (s *Sim) Progress() int64 {
	return s.progress
}

// CurrentWorkloadDisplayName derives the display name from the filename
// stem.
func (s *Sim) CurrentWorkloadDisplayName() string {
	base := filepath.Base(s.workload)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CurrentPlatformID maps the workload extension to a platform id, or
// "Unknown" when the extension is not recognized.
func (s *Sim) CurrentPlatformID() string {
	ext := strings.ToLower(filepath.Ext(s.workload))
	if id, ok := platformByExtension[ext]; ok {
		return id
	}
	return "Unknown"
}
