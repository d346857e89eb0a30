package organizer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mj1618/organizer-cli/internal/events"
	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/notifier"
)

// ActiveWatcher reports changes of the active matching window.
func (s *Service) ActiveWatcher() *notifier.Watcher[model.MatchedWindow] {
	return &notifier.Watcher[model.MatchedWindow]{
		Name:     s.opts.ActiveEvent,
		Interval: s.opts.Interval,
		// Process metadata is re-read on every tick and may come and go.
		Same: func(a, b model.MatchedWindow) bool {
			return a.Handle == b.Handle && a.Title == b.Title
		},
		Probe: func(ctx context.Context) (model.MatchedWindow, error) {
			w, _ := s.enumerator.Active(ctx)
			return w, nil
		},
		Emit: func(ctx context.Context, w model.MatchedWindow) error {
			var payload *model.MatchedWindow
			if w.Handle != 0 {
				payload = &w
			}
			return s.emitter.Emit(ctx, events.NewEvent(s.opts.ActiveEvent, payload))
		},
	}
}

// FocusWatcher reports changes of FocusState.
func (s *Service) FocusWatcher() *notifier.Watcher[bool] {
	return &notifier.Watcher[bool]{
		Name:     s.opts.FocusEvent,
		Interval: s.opts.Interval,
		Probe: func(ctx context.Context) (bool, error) {
			return s.FocusState(ctx), nil
		},
		Emit: func(ctx context.Context, focused bool) error {
			return s.emitter.Emit(ctx, events.NewEvent(s.opts.FocusEvent, focused))
		},
	}
}

// Watch runs both watchers until ctx is done.
func (s *Service) Watch(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.ActiveWatcher().Run(ctx) })
	g.Go(func() error { return s.FocusWatcher().Run(ctx) })
	return g.Wait()
}
