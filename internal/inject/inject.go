// Package inject synthesizes left clicks aimed at specific windows.
package inject

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
)

var (
	ErrPostFailed                  = errors.New("failed to deliver click message")
	ErrCoordinateTranslationFailed = errors.New("failed to translate screen point to client space")
	ErrPointerQueryFailed          = errors.New("failed to query pointer position")
)

const (
	DefaultSettle = 50 * time.Millisecond
	DefaultDelay  = 100 * time.Millisecond
)

// Strategy is a click delivery method.
type Strategy int

const (
	// Queued posts the messages with the raw screen point to the window's
	// queue. Every target receives the same absolute coordinates.
	Queued Strategy = iota
	// Direct translates the point into client space and sends the messages
	// to the window procedure, bypassing the queue.
	Direct
)

func (s Strategy) String() string {
	switch s {
	case Queued:
		return "queued"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "queued" or "direct".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "queued", "":
		return Queued, nil
	case "direct":
		return Direct, nil
	default:
		return 0, fmt.Errorf("unknown click strategy %q (expected queued or direct)", s)
	}
}

// Targets provides a fresh set of windows to click.
type Targets interface {
	Enumerate(ctx context.Context) []model.MatchedWindow
}

// Options configures an Injector.
type Options struct {
	Strategy Strategy
	// Settle is the pause between button-down and button-up.
	Settle time.Duration
	// Delay is the pause between windows on the sequential path.
	Delay time.Duration
	// Concurrent clicks every window at once when no delay is requested.
	Concurrent bool
}

// Injector delivers clicks through a platform.Messenger.
type Injector struct {
	messenger platform.Messenger
	targets   Targets
	opts      Options
}

// New creates an Injector.
func New(messenger platform.Messenger, targets Targets, opts Options) *Injector {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Settle < 0 {
		opts.Settle = 0
	}
	return &Injector{messenger: messenger, targets: targets, opts: opts}
}

// Click presses and releases the left button at pt, given in screen
// coordinates, on window h.
func (i *Injector) Click(ctx context.Context, h model.Handle, pt platform.Point) error {
	deliver := i.messenger.PostMessage
	if i.opts.Strategy == Direct {
		client, err := i.messenger.ScreenToClient(h, pt)
		if err != nil {
			return fmt.Errorf("%w for %#x: %w", ErrCoordinateTranslationFailed, uint64(h), err)
		}
		pt = client
		deliver = i.messenger.SendMessage
	}
	lparam := platform.MakeLParam(pt)

	if err := deliver(h, platform.WMLButtonDown, platform.MKLButton, lparam); err != nil {
		return fmt.Errorf("%w: button down on %#x: %w", ErrPostFailed, uint64(h), err)
	}
	// The release is always delivered once the press went through.
	time.Sleep(i.opts.Settle)
	if err := deliver(h, platform.WMLButtonUp, 0, lparam); err != nil {
		return fmt.Errorf("%w: button up on %#x: %w", ErrPostFailed, uint64(h), err)
	}
	logger.Tracef(ctx, "%s click at %s on %#x", i.opts.Strategy, pt, uint64(h))
	return nil
}

// Failure is one window a batch could not click.
type Failure struct {
	Handle model.Handle `yaml:"hwnd"  json:"hwnd"`
	Name   string       `yaml:"name"  json:"name"`
	Error  string       `yaml:"error" json:"error"`
}

// Report is the outcome of a batch click.
type Report struct {
	Point    platform.Point `yaml:"point"              json:"point"`
	Strategy string         `yaml:"strategy"           json:"strategy"`
	Targets  int            `yaml:"targets"            json:"targets"`
	Clicked  []model.Handle `yaml:"clicked"            json:"clicked"`
	Failed   []Failure      `yaml:"failed,omitempty"   json:"failed,omitempty"`

	errs *multierror.Error
}

// Err returns the per-window failures combined, or nil.
func (r *Report) Err() error {
	return r.errs.ErrorOrNil()
}

func (r *Report) add(w model.MatchedWindow, err error) {
	if err != nil {
		r.Failed = append(r.Failed, Failure{Handle: w.Handle, Name: w.Name, Error: err.Error()})
		r.errs = multierror.Append(r.errs, err)
		return
	}
	r.Clicked = append(r.Clicked, w.Handle)
}

// ClickAll clicks every matching window at the current pointer position.
//
// The pointer is read once; if that fails nothing is clicked and the error
// is returned. Targets come from a fresh enumeration. Per-window failures
// are logged and collected in the report but never fail the batch.
//
// With delay nil and concurrency enabled all windows are clicked at once.
// Otherwise windows are clicked in order with *delay (or the configured
// default) between them.
func (i *Injector) ClickAll(ctx context.Context, delay *time.Duration) (*Report, error) {
	pt, err := i.messenger.CursorPos()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPointerQueryFailed, err)
	}
	targets := i.targets.Enumerate(ctx)
	report := &Report{
		Point:    pt,
		Strategy: i.opts.Strategy.String(),
		Targets:  len(targets),
		Clicked:  []model.Handle{},
	}

	if delay == nil && i.opts.Concurrent {
		i.clickConcurrently(ctx, pt, targets, report)
	} else {
		d := i.opts.Delay
		if delay != nil {
			d = *delay
		}
		if err := i.clickSequentially(ctx, pt, targets, d, report); err != nil {
			return report, err
		}
	}

	logger.Debugf(ctx, "clicked %d/%d windows at %s", len(report.Clicked), report.Targets, pt)
	return report, nil
}

func (i *Injector) clickConcurrently(ctx context.Context, pt platform.Point, targets []model.MatchedWindow, report *Report) {
	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make([]error, len(targets))
	)
	for idx, w := range targets {
		g.Go(func() error {
			err := i.Click(ctx, w.Handle, pt)
			if err != nil {
				logger.Errorf(ctx, "click on %s failed: %v", w, err)
			}
			mu.Lock()
			results[idx] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	for idx, w := range targets {
		report.add(w, results[idx])
	}
}

func (i *Injector) clickSequentially(ctx context.Context, pt platform.Point, targets []model.MatchedWindow, delay time.Duration, report *Report) error {
	for idx, w := range targets {
		if idx > 0 && delay > 0 {
			t := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		err := i.Click(ctx, w.Handle, pt)
		if err != nil {
			logger.Errorf(ctx, "click on %s failed: %v", w, err)
		}
		report.add(w, err)
	}
	return nil
}
