package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romshuffle/shuffler/internal/session"
)

func TestLoadMissingFileYieldsFreshState(t *testing.T) {
	s, err := session.Load(filepath.Join(t.TempDir(), "session.txt"))
	require.NoError(t, err)
	assert.True(t, s.Fresh())
	assert.Equal(t, int64(session.FreshSessionKind), s.SessionKind)
	assert.Zero(t, s.TotalSwapCount)
	assert.Empty(t, s.CurrentWorkloadFile)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")

	original := &session.State{
		SessionKind:          3,
		CurrentWorkloadName:  "Mega Man 2",
		CurrentWorkloadFile:  "megaman2.nes",
		CurrentPlatformID:    "NES",
		SwapDeadlineTicks:    1800,
		SeedChainValue:       482913,
		TotalSwapCount:       12,
		TotalActivationCount: 13,
		TotalTickCount:       216000,
		TotalPlayTimeSeconds: 3600,
		TickCount:            450,
		PlayTimeSeconds:      7,
		SwapCount:            4,
		ActivationCount:      5,
	}
	require.NoError(t, original.Save(path))

	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
	assert.False(t, loaded.Fresh())
}

func TestMarkResumed(t *testing.T) {
	s := &session.State{SessionKind: session.FreshSessionKind}
	assert.True(t, s.Fresh())

	s.MarkResumed()
	assert.False(t, s.Fresh())
	assert.Equal(t, int64(2), s.SessionKind)
}

func TestLoadNumericLookingWorkloadName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")

	original := &session.State{
		SessionKind:         2,
		CurrentWorkloadName: "1942",
		CurrentWorkloadFile: "1942.nes",
	}
	require.NoError(t, original.Save(path))

	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1942", loaded.CurrentWorkloadName)
	assert.Equal(t, "1942.nes", loaded.CurrentWorkloadFile)
}

func TestLoadPartialFileKeepsZeroValues(t *testing.T) {
	// Whatever the file holds is authoritative; a zero deadline or chain
	// value is loaded as-is and re-derived by the engine, never invented
	// here.
	path := filepath.Join(t.TempDir(), "session.txt")
	partial := &session.State{SessionKind: 2, TotalSwapCount: 3}
	require.NoError(t, partial.Save(path))

	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), loaded.TotalSwapCount)
	assert.Zero(t, loaded.SwapDeadlineTicks)
	assert.Zero(t, loaded.SeedChainValue)
}
