package organizer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/organizer-cli/internal/config"
	"github.com/mj1618/organizer-cli/internal/events"
	"github.com/mj1618/organizer-cli/internal/model"
)

func TestWatchEmitsTransitions(t *testing.T) {
	desk := newDesktop()
	svc, rec := newService(t, desk, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Watch(ctx) }()

	desk.SetForegroundHandle(0x10)
	require.Eventually(t, func() bool {
		return len(rec.Named("focus_state_changed")) == 1 && len(rec.Named("active_window_changed")) == 1
	}, time.Second, time.Millisecond)

	desk.SetForegroundHandle(0x99)
	require.Eventually(t, func() bool {
		return len(rec.Named("focus_state_changed")) == 2 && len(rec.Named("active_window_changed")) == 2
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	focusEvents := rec.Named("focus_state_changed")
	assert.Equal(t, true, focusEvents[0].Payload)
	assert.Equal(t, false, focusEvents[1].Payload)

	activeEvents := rec.Named("active_window_changed")
	assert.Equal(t, "Alpha", activePayload(t, activeEvents[0]).Name)
	assert.Nil(t, activePayload(t, activeEvents[1]))
}

func TestActiveWatcherSequence(t *testing.T) {
	desk := newDesktop()
	desk.ForegroundScript = []model.Handle{0x10, 0x10, 0x20, 0x20, 0x10}
	svc, rec := newService(t, desk, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := svc.ActiveWatcher()
	go func() { _ = w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(rec.Named("active_window_changed")) >= 3
	}, time.Second, time.Millisecond)
	// Once the script is exhausted the foreground reads as 0, a fourth
	// transition to "none".
	require.Eventually(t, func() bool {
		return len(rec.Named("active_window_changed")) == 4
	}, time.Second, time.Millisecond)
	cancel()

	evs := rec.Named("active_window_changed")
	assert.Equal(t, "Alpha", activePayload(t, evs[0]).Name)
	assert.Equal(t, "Bravo", activePayload(t, evs[1]).Name)
	assert.Equal(t, "Alpha", activePayload(t, evs[2]).Name)
	assert.Nil(t, activePayload(t, evs[3]))
}

func TestActiveWatcherIgnoresProcessLookupFlaps(t *testing.T) {
	desk := newDesktop()
	desk.SetForegroundHandle(0x10)

	cfg := config.Default()
	cfg.Notify.Interval = time.Millisecond
	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	require.True(t, opts.Enumerator.ResolveProcess)

	rec := &events.Recorder{}
	svc := New(desk.Provider(), rec, opts)
	var lookups atomic.Int32
	svc.Enumerator().WithProcessNames(func(uint32) (string, error) {
		if lookups.Add(1)%2 == 0 {
			return "", errors.New("access denied")
		}
		return "game.exe", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = svc.ActiveWatcher().Run(ctx) }()

	require.Eventually(t, func() bool {
		return lookups.Load() >= 10
	}, time.Second, time.Millisecond)
	cancel()

	evs := rec.Named("active_window_changed")
	require.Len(t, evs, 1)
	assert.Equal(t, "game.exe", activePayload(t, evs[0]).Process)
}
