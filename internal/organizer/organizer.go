// Package organizer wires discovery, the window registry, focus control and
// click injection into the operations exposed to the command line and to MCP
// clients.
package organizer

import (
	"context"
	"fmt"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/mj1618/organizer-cli/internal/config"
	"github.com/mj1618/organizer-cli/internal/enumerator"
	"github.com/mj1618/organizer-cli/internal/events"
	"github.com/mj1618/organizer-cli/internal/focus"
	"github.com/mj1618/organizer-cli/internal/inject"
	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
	"github.com/mj1618/organizer-cli/internal/registry"
)

// Options configures a Service.
type Options struct {
	Enumerator       enumerator.Options
	Inject           inject.Options
	RefreshOnCycle   bool
	FollowForeground bool
	HostTitle        string
	Interval         time.Duration
	ActiveEvent      string
	FocusEvent       string
}

// OptionsFromConfig translates the configuration file into Service options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	strategy, err := inject.ParseStrategy(string(cfg.Click.Strategy))
	if err != nil {
		return Options{}, err
	}
	return Options{
		Enumerator: enumerator.Options{
			Marker:         cfg.Match.Marker,
			Separator:      cfg.Match.Separator,
			TitleBuffer:    cfg.Match.TitleBuffer,
			ResolveProcess: true,
		},
		Inject: inject.Options{
			Strategy:   strategy,
			Settle:     cfg.Click.Settle,
			Delay:      cfg.Click.Delay,
			Concurrent: cfg.Click.Concurrent,
		},
		RefreshOnCycle:   cfg.Focus.RefreshOnCycle,
		FollowForeground: cfg.Focus.FollowForeground,
		HostTitle:        cfg.Focus.HostTitle,
		Interval:         cfg.Notify.Interval,
		ActiveEvent:      cfg.Notify.ActiveEvent,
		FocusEvent:       cfg.Notify.FocusEvent,
	}, nil
}

// Service is the single long-lived owner of the window registry. It is safe
// for concurrent use.
type Service struct {
	provider   *platform.Provider
	enumerator *enumerator.Enumerator
	registry   *registry.Registry
	focus      *focus.Controller
	injector   *inject.Injector
	emitter    events.Emitter
	opts       Options
}

// New builds a Service over provider. A nil emitter discards events.
func New(provider *platform.Provider, emitter events.Emitter, opts Options) *Service {
	if emitter == nil {
		emitter = events.Discard
	}
	if opts.Interval <= 0 {
		opts.Interval = 500 * time.Millisecond
	}
	if opts.ActiveEvent == "" {
		opts.ActiveEvent = "active_window_changed"
	}
	if opts.FocusEvent == "" {
		opts.FocusEvent = "focus_state_changed"
	}
	enum := enumerator.New(provider.Windows, opts.Enumerator)
	return &Service{
		provider:   provider,
		enumerator: enum,
		registry:   registry.New(enum),
		focus:      focus.NewController(provider.Windows, provider.Focuser),
		injector:   inject.New(provider.Messenger, enum, opts.Inject),
		emitter:    emitter,
		opts:       opts,
	}
}

// Enumerator exposes the service's window enumerator.
func (s *Service) Enumerator() *enumerator.Enumerator {
	return s.enumerator
}

// Registry exposes the service's window registry.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Options returns the effective options.
func (s *Service) Options() Options {
	return s.opts
}

// ListWindows enumerates the matching windows afresh. It always succeeds.
func (s *Service) ListWindows(ctx context.Context) []model.MatchedWindow {
	return s.enumerator.Enumerate(ctx)
}

// ActiveWindow returns the foreground window when it is a match.
func (s *Service) ActiveWindow(ctx context.Context) (model.MatchedWindow, bool) {
	return s.enumerator.Active(ctx)
}

// Refresh re-enumerates into the registry.
func (s *Service) Refresh(ctx context.Context) ([]model.MatchedWindow, error) {
	windows, _, err := s.RefreshWithChanges(ctx)
	return windows, err
}

// RefreshWithChanges re-enumerates into the registry and reports how the
// window set differs from the previous refresh.
func (s *Service) RefreshWithChanges(ctx context.Context) ([]model.MatchedWindow, []model.WindowChange, error) {
	curr, prev, err := s.registry.RefreshDiff(ctx)
	if err != nil {
		return nil, nil, err
	}
	changes := model.DiffWindows(prev, curr)
	for _, c := range changes {
		logger.Debugf(ctx, "window %s: %#x %q", c.Type, uint64(c.Handle), c.Title)
	}
	return curr, changes, nil
}

// Focus brings h to the foreground, moves the cursor onto it and emits the
// active-window event.
func (s *Service) Focus(ctx context.Context, h model.Handle) error {
	if err := s.focus.ForceForeground(ctx, h); err != nil {
		return err
	}
	if _, err := s.registry.Seek(ctx, h); err != nil {
		logger.Warnf(ctx, "focused %#x but could not move the cursor: %v", uint64(h), err)
	}
	s.emitActive(ctx)
	return nil
}

// Next focuses the following window. It returns nil without error when there
// are no windows.
func (s *Service) Next(ctx context.Context) (*model.MatchedWindow, error) {
	return s.cycle(ctx, registry.Forward)
}

// Previous focuses the preceding window. It returns nil without error when
// there are no windows.
func (s *Service) Previous(ctx context.Context) (*model.MatchedWindow, error) {
	return s.cycle(ctx, registry.Backward)
}

func (s *Service) cycle(ctx context.Context, dir registry.Direction) (*model.MatchedWindow, error) {
	if s.opts.RefreshOnCycle {
		if _, err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	if s.opts.FollowForeground {
		if active, ok := s.enumerator.Active(ctx); ok {
			if _, err := s.registry.Seek(ctx, active.Handle); err != nil {
				return nil, err
			}
		}
	}

	w, ok, err := s.registry.Advance(ctx, dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Debugf(ctx, "no windows to cycle %s", dir)
		return nil, nil
	}
	logger.Debugf(ctx, "focusing %s", w)
	if err := s.focus.ForceForeground(ctx, w.Handle); err != nil {
		return nil, fmt.Errorf("unable to focus %s: %w", w, err)
	}
	s.emitActive(ctx)
	return &w, nil
}

// ClickAll clicks every matching window at the pointer position. A non-nil
// delay clicks them one at a time with that pause between windows.
func (s *Service) ClickAll(ctx context.Context, delay *time.Duration) (*inject.Report, error) {
	return s.injector.ClickAll(ctx, delay)
}

// FocusState reports whether the foreground window is the host window or a
// matching window.
func (s *Service) FocusState(ctx context.Context) bool {
	fg := s.provider.Windows.ForegroundWindow()
	if fg == 0 {
		return false
	}
	if s.opts.HostTitle != "" {
		title, err := s.provider.Windows.WindowTitle(fg, s.opts.Enumerator.TitleBuffer)
		if err == nil && title == s.opts.HostTitle {
			return true
		}
	}
	_, ok := s.enumerator.Describe(ctx, fg)
	return ok
}

func (s *Service) emitActive(ctx context.Context) {
	var payload *model.MatchedWindow
	if w, ok := s.enumerator.Active(ctx); ok {
		payload = &w
	}
	if err := s.emitter.Emit(ctx, events.NewEvent(s.opts.ActiveEvent, payload)); err != nil {
		logger.Errorf(ctx, "unable to emit %s: %v", s.opts.ActiveEvent, err)
	}
}
