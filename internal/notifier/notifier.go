// Package notifier polls a value on a fixed period and reports transitions.
package notifier

import (
	"context"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Probe reads the current value. An error skips the tick.
type Probe[T comparable] func(ctx context.Context) (T, error)

// Emit receives each new value. An error is logged and polling continues.
type Emit[T comparable] func(ctx context.Context, value T) error

// Watcher emits a value only when it differs from the previous observation.
// The initial previous value is the zero value of T.
type Watcher[T comparable] struct {
	Name     string
	Interval time.Duration
	Probe    Probe[T]
	Emit     Emit[T]
	// Same overrides == when only part of T identifies a state.
	Same func(a, b T) bool

	prev T
}

// Observe records v and reports whether it is a transition.
func (w *Watcher[T]) Observe(v T) bool {
	same := v == w.prev
	if w.Same != nil {
		same = w.Same(w.prev, v)
	}
	if same {
		return false
	}
	w.prev = v
	return true
}

// Run polls until ctx is done. It never returns early on probe or emit
// errors.
func (w *Watcher[T]) Run(ctx context.Context) error {
	t := time.NewTicker(w.Interval)
	defer t.Stop()
	return w.run(ctx, t.C)
}

func (w *Watcher[T]) run(ctx context.Context, ticks <-chan time.Time) error {
	logger.Debugf(ctx, "watching %s every %s", w.Name, w.Interval)
	defer logger.Debugf(ctx, "/watching %s", w.Name)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
		}

		v, err := w.Probe(ctx)
		if err != nil {
			logger.Errorf(ctx, "unable to probe %s: %v", w.Name, err)
			continue
		}
		if !w.Observe(v) {
			continue
		}
		if err := w.Emit(ctx, v); err != nil {
			logger.Errorf(ctx, "unable to emit %s: %v", w.Name, err)
		}
	}
}
