// Package display renders the startup banner, the console countdown to the
// next swap, and the stats listing.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/romshuffle/shuffler/internal/logging"
	"github.com/romshuffle/shuffler/internal/session"
	"github.com/romshuffle/shuffler/internal/stats"
)

var (
	headerColor    = color.New(color.FgCyan, color.Bold).SprintFunc()
	countdownColor = color.New(color.FgYellow).SprintFunc()
)

const separator = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays session info at process start.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  shuffler - workload rotation engine
//	═══════════════════════════════════════════════════
//	  Session:    resumed (#3)
//	  Workloads:  12
//	  Interval:   30s - 60s
//	═══════════════════════════════════════════════════
func PrintStartupBanner(sessionKind int64, poolSize, minInterval, maxInterval int) {
	kind := "fresh"
	if sessionKind > session.FreshSessionKind {
		kind = fmt.Sprintf("resumed (#%d)", sessionKind)
	}

	sep := headerColor(separator)
	fmt.Println(sep)
	fmt.Println(headerColor("  shuffler - workload rotation engine"))
	fmt.Println(sep)
	fmt.Printf("  Session:    %s\n", kind)
	fmt.Printf("  Workloads:  %d\n", poolSize)
	fmt.Printf("  Interval:   %ds - %ds\n", minInterval, maxInterval)
	fmt.Println(sep)
}

// Countdown renders the remaining seconds to the next swap as a single
// carriage-return line so consecutive updates overwrite each other.
func Countdown(secondsRemaining int64) {
	fmt.Printf("\r%s %-20s", countdownColor("[NEXT SWAP]"), logging.FormatDuration(secondsRemaining))
}

// ClearCountdown erases the countdown line before regular output resumes.
func ClearCountdown() {
	fmt.Printf("\r%s\r", strings.Repeat(" ", 40))
}

// PrintSessionStats lists the session totals and per-workload counters.
func PrintSessionStats(st *session.State, records map[string]*stats.WorkloadStats) {
	sep := headerColor(separator)
	fmt.Println(sep)
	fmt.Println(headerColor("  Session totals"))
	fmt.Println(sep)
	fmt.Printf("  Swaps:       %d\n", st.TotalSwapCount)
	fmt.Printf("  Activations: %d\n", st.TotalActivationCount)
	fmt.Printf("  Ticks:       %d\n", st.TotalTickCount)
	fmt.Printf("  Play time:   %s\n", logging.FormatDuration(st.TotalPlayTimeSeconds))
	if st.CurrentWorkloadName != "" {
		fmt.Printf("  Current:     %s [%s]\n", st.CurrentWorkloadName, st.CurrentPlatformID)
	}
	fmt.Println(sep)

	if len(records) == 0 {
		return
	}

	files := make([]string, 0, len(records))
	for f := range records {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, f := range files {
		w := records[f]
		name := w.WorkloadName
		if name == "" {
			name = f
		}
		fmt.Printf("  %-30s swaps=%-4d plays=%-4d time=%s\n",
			name, w.SwapCount, w.ActivationCount, logging.FormatDuration(w.PlayTimeSeconds))
	}
	fmt.Println(sep)
}
