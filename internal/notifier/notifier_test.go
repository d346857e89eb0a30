package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive feeds one tick per scripted value and returns the emitted values.
func drive[T comparable](t *testing.T, script []T, probeErr map[int]error) []T {
	t.Helper()
	var (
		i       int
		emitted []T
	)
	w := &Watcher[T]{
		Name:     "test",
		Interval: time.Millisecond,
		Probe: func(context.Context) (T, error) {
			defer func() { i++ }()
			if err := probeErr[i]; err != nil {
				var zero T
				return zero, err
			}
			return script[i], nil
		},
		Emit: func(_ context.Context, v T) error {
			emitted = append(emitted, v)
			return errors.New("sink unavailable")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan time.Time)
	done := make(chan error, 1)
	go func() { done <- w.run(ctx, ticks) }()
	for range script {
		ticks <- time.Now()
	}
	// An unbuffered send only completes once the previous tick is handled.
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	return emitted
}

func TestWatcherEdgeTriggered(t *testing.T) {
	got := drive(t, []string{"A", "A", "B", "B", "A"}, nil)
	assert.Equal(t, []string{"A", "B", "A"}, got)
}

func TestWatcherBool(t *testing.T) {
	got := drive(t, []bool{false, false, true, true, false, true}, nil)
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestWatcherSkipsProbeErrors(t *testing.T) {
	got := drive(t, []string{"A", "", "A", "B"}, map[int]error{1: errors.New("transient")})
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestWatcherRunStopsOnCancel(t *testing.T) {
	var calls int
	w := &Watcher[int]{
		Interval: time.Millisecond,
		Probe: func(context.Context) (int, error) {
			calls++
			return calls, nil
		},
		Emit: func(context.Context, int) error { return nil },
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Run(ctx), context.DeadlineExceeded)
	assert.Positive(t, calls)
}

func TestWatcherSameIgnoresUnkeyedFields(t *testing.T) {
	type window struct {
		ID      int
		Process string
	}
	w := &Watcher[window]{
		Same: func(a, b window) bool { return a.ID == b.ID },
	}
	assert.True(t, w.Observe(window{ID: 1, Process: "game.exe"}))
	assert.False(t, w.Observe(window{ID: 1}))
	assert.False(t, w.Observe(window{ID: 1, Process: "game.exe"}))
	assert.True(t, w.Observe(window{ID: 2}))
}
