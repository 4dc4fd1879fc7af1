package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romshuffle/shuffler/internal/settings"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg := settings.Load(filepath.Join(t.TempDir(), "settings.txt"))
	assert.Equal(t, settings.Defaults(), cfg)
}

func TestLoadOverridesRecognizedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	content := "minSwapInterval: 5\n" +
		"maxSwapInterval: 10\n" +
		"showCountdown: false\n" +
		"seed: 1234\n" +
		"seedMode: 1\n" +
		"ticksPerSecond: 30\n" +
		"pauseDelayMs: 500\n" +
		"logLevel: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := settings.Load(path)
	assert.Equal(t, 5, cfg.MinSwapInterval)
	assert.Equal(t, 10, cfg.MaxSwapInterval)
	assert.False(t, cfg.ShowCountdown)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, settings.Seeded, cfg.SeedMode)
	assert.Equal(t, 30, cfg.TicksPerSecond)
	assert.Equal(t, 500, cfg.PauseDelayMs)
	assert.Equal(t, 2, cfg.LogLevel)
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	content := "seed: 7\n" +
		"someFutureOption: true\n" +
		"hotkeys: F1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := settings.Load(path)
	assert.Equal(t, int64(7), cfg.Seed)

	// Everything outside the schema stays at its default.
	defaults := settings.Defaults()
	defaults.Seed = 7
	assert.Equal(t, defaults, cfg)
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	require.NoError(t, os.WriteFile(path, []byte("showCountdown: false\n"), 0644))

	cfg := settings.Load(path)
	assert.False(t, cfg.ShowCountdown)
	assert.Equal(t, settings.Defaults().MinSwapInterval, cfg.MinSwapInterval)
	assert.Equal(t, settings.Defaults().TicksPerSecond, cfg.TicksPerSecond)
}

func TestLoadRejectsNonPositiveTickRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	require.NoError(t, os.WriteFile(path, []byte("ticksPerSecond: 0\n"), 0644))

	cfg := settings.Load(path)
	assert.Equal(t, settings.Defaults().TicksPerSecond, cfg.TicksPerSecond)
}
