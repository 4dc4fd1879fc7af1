package signal

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptRunsCallbackThenCancels(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var mu sync.Mutex
	saved := false
	SetupSignalHandler(ctx, cancel, func() {
		mu.Lock()
		saved = true
		mu.Unlock()
	})

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after SIGINT")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, saved, "interrupt callback should run before cancellation")
}

func TestContextCancellationSkipsCallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	called := false
	SetupSignalHandler(ctx, cancel, func() {
		mu.Lock()
		called = true
		mu.Unlock()
	})

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, called, "callback should not run when the context is cancelled directly")
}

func TestNilCallbackStillCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	SetupSignalHandler(ctx, cancel, nil)
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after SIGTERM")
	}
}
