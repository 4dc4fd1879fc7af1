// Package settings defines the engine configuration model and its built-in
// defaults.
//
// Configuration is entirely file-based: a single override file in the
// key-value text format, read once at process start. The schema is closed -
// only keys present in the default schema may be overridden, and unknown
// keys in the file are silently ignored.
package settings

import "github.com/romshuffle/shuffler/internal/kv"

// SeedMode selects how the random generator is seeded at process start.
type SeedMode int

const (
	// Unseeded seeds from wall-clock time on every run; reproducibility is
	// not a goal.
	Unseeded SeedMode = 0
	// Seeded seeds from the operator-chosen seed (fresh session) or the
	// persisted seed chain value (resumed session).
	Seeded SeedMode = 1
)

// Settings holds every engine option. Read-only after Load.
type Settings struct {
	// Swap interval bounds, in seconds.
	MinSwapInterval int
	MaxSwapInterval int

	// ShowCountdown enables the console countdown to the next swap.
	ShowCountdown bool

	// Seed is the operator-chosen fixed seed used when SeedMode is Seeded
	// and the session is fresh.
	Seed int64

	SeedMode SeedMode

	// TicksPerSecond converts interval seconds to tick counts.
	TicksPerSecond int

	// PauseDelayMs is an optional uninterruptible delay after each completed
	// swap. -1 disables it.
	PauseDelayMs int

	// LogLevel: 0 quiet, 1 info, 2 debug.
	LogLevel int
}

// Defaults returns the built-in settings values.
func Defaults() Settings {
	return Settings{
		MinSwapInterval: 30,
		MaxSwapInterval: 60,
		ShowCountdown:   true,
		Seed:            0,
		SeedMode:        Unseeded,
		TicksPerSecond:  60,
		PauseDelayMs:    -1,
		LogLevel:        1,
	}
}

// Load reads the override file at path on top of the defaults.
//
// Load never fails: a missing or malformed file yields the defaults
// unchanged. Only recognized keys override; everything else is ignored.
func Load(path string) Settings {
	cfg := Defaults()

	entries, ok, err := kv.Load(path)
	if err != nil || !ok {
		return cfg
	}

	apply(&cfg, entries)
	return cfg
}

// apply overwrites cfg fields from entries. Keys outside the schema are
// ignored, as are values of an unusable type.
func apply(cfg *Settings, entries map[string]kv.Value) {
	for key, value := range entries {
		switch key {
		case "minSwapInterval":
			cfg.MinSwapInterval = int(value.Int())
		case "maxSwapInterval":
			cfg.MaxSwapInterval = int(value.Int())
		case "showCountdown":
			if value.Kind == kv.KindBool {
				cfg.ShowCountdown = value.Bool
			}
		case "seed":
			cfg.Seed = value.Int()
		case "seedMode":
			if value.Int() == int64(Seeded) {
				cfg.SeedMode = Seeded
			} else {
				cfg.SeedMode = Unseeded
			}
		case "ticksPerSecond":
			if value.Int() > 0 {
				cfg.TicksPerSecond = int(value.Int())
			}
		case "pauseDelayMs":
			cfg.PauseDelayMs = int(value.Int())
		case "logLevel":
			cfg.LogLevel = int(value.Int())
		}
	}
}
