package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/romshuffle/shuffler/internal/display"
	"github.com/romshuffle/shuffler/internal/engine"
	"github.com/romshuffle/shuffler/internal/exitcode"
	"github.com/romshuffle/shuffler/internal/host"
	"github.com/romshuffle/shuffler/internal/logging"
	"github.com/romshuffle/shuffler/internal/pool"
	"github.com/romshuffle/shuffler/internal/seed"
	"github.com/romshuffle/shuffler/internal/session"
	"github.com/romshuffle/shuffler/internal/settings"
	sighandler "github.com/romshuffle/shuffler/internal/signal"
	"github.com/romshuffle/shuffler/internal/stats"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "shuffler",
		Short:   "Scheduled rotation across a pool of workloads",
		Long:    "Shuffler rotates control among a pool of workloads at scheduled intervals, persisting session state, per-workload statistics, and a reproducible randomness chain.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRunCmd(), newStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a fatal error to its named exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrEmptyPool):
		return exitcode.EmptyPool
	case errors.Is(err, context.Canceled):
		return exitcode.Interrupted
	default:
		return exitcode.Error
	}
}

// sessionDir resolves the optional positional persistence root.
func sessionDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func newRunCmd() *cobra.Command {
	var maxSwaps int

	cmd := &cobra.Command{
		Use:   "run [session-dir]",
		Short: "Rotate workloads until interrupted",
		Long:  "Run loads the settings and session records from the persistence root, activates a workload in the simulated host, and rotates through the pool until interrupted or the swap cap is reached. All engine settings come from settings.txt in the session directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRotation(sessionDir(args), maxSwaps)
		},
	}
	cmd.Flags().IntVar(&maxSwaps, "swaps", 0, "stop after this many swaps (0 = run until interrupted)")
	return cmd
}

func runRotation(dir string, maxSwaps int) error {
	layout := engine.NewLayout(dir)
	if err := layout.Scaffold(); err != nil {
		return err
	}

	cfg := settings.Load(layout.SettingsFile)
	logging.SetLevel(cfg.LogLevel)

	st, err := session.Load(layout.SessionFile)
	if err != nil {
		return err
	}

	seeds := seed.New(cfg, st)
	sim := &host.Sim{TickDuration: time.Second / time.Duration(cfg.TicksPerSecond)}
	eng := engine.New(layout, cfg, st, seeds, sim)
	if cfg.ShowCountdown {
		eng.Countdown = display.Countdown
	}

	// Start bumps the session kind before its first save; read it first so
	// the banner reports what was actually loaded from disk.
	kind := st.SessionKind

	if err := eng.Start(); err != nil {
		if errors.Is(err, engine.ErrEmptyPool) {
			logging.Error("no workloads found under %s", layout.Roms)
		}
		return err
	}

	entries, err := pool.List(layout.Roms, pool.DisallowedExtensions)
	if err != nil {
		return err
	}
	display.PrintStartupBanner(kind, len(entries), cfg.MinSwapInterval, cfg.MaxSwapInterval)
	logging.Info("running %s [%s]", st.CurrentWorkloadName, st.CurrentPlatformID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		display.ClearCountdown()
		logging.Warn("interrupted, stopping rotation")
	})

	if err := eng.Run(ctx, maxSwaps); err != nil {
		if errors.Is(err, context.Canceled) {
			// The tick loop has exited; the session record is quiescent.
			if serr := eng.SaveSession(); serr != nil {
				logging.Error("save session: %v", serr)
			} else {
				logging.Info("session saved, %d total swaps", st.TotalSwapCount)
			}
		}
		return err
	}

	display.ClearCountdown()
	logging.Info("swap cap reached after %d total swaps", st.TotalSwapCount)
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [session-dir]",
		Short: "Print session totals and per-workload counters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStats(sessionDir(args))
		},
	}
}

func printStats(dir string) error {
	layout := engine.NewLayout(dir)

	st, err := session.Load(layout.SessionFile)
	if err != nil {
		return err
	}

	records := make(map[string]*stats.WorkloadStats)
	entries, err := os.ReadDir(layout.Stats)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("scan stats dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		workloadFile := strings.TrimSuffix(e.Name(), ".txt")
		w, existed, err := stats.Load(layout.Stats, workloadFile)
		if err != nil {
			return err
		}
		if existed {
			records[workloadFile] = w
		}
	}

	display.PrintSessionStats(st, records)
	return nil
}
