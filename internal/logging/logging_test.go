package logging_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romshuffle/shuffler/internal/logging"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// captureStdout captures stdout output produced by fn.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestInfoGatedByLevel(t *testing.T) {
	logging.SetLevel(0)
	out := captureStdout(t, func() { logging.Info("hidden") })
	assert.Empty(t, out)

	logging.SetLevel(1)
	out = captureStdout(t, func() { logging.Info("swap in %ds", 30) })
	assert.Equal(t, "[INFO] swap in 30s\n", out)
}

func TestDebugRequiresLevelTwo(t *testing.T) {
	logging.SetLevel(1)
	out := captureStdout(t, func() { logging.Debug("hidden") })
	assert.Empty(t, out)

	logging.SetLevel(2)
	out = captureStdout(t, func() { logging.Debug("deadline %d", 300) })
	assert.Equal(t, "[DEBUG] deadline 300\n", out)
}

func TestWarnAlwaysPrints(t *testing.T) {
	logging.SetLevel(0)
	out := captureStdout(t, func() { logging.Warn("pool shrank") })
	assert.Equal(t, "[WARN] pool shrank\n", out)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{0, "0s"},
		{45, "45s"},
		{90, "1m 30s"},
		{3661, "1h 1m 1s"},
		{7200, "2h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.FormatDuration(tt.seconds))
		})
	}
}
