// Package enumerator discovers the top-level windows that belong to the
// target application family.
package enumerator

import (
	"context"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
)

// Options controls title matching.
type Options struct {
	// Marker must occur in a title for the window to be considered.
	Marker string
	// Separator splits a title into name and label.
	Separator string
	// TitleBuffer bounds how many characters of a title are read.
	TitleBuffer int
	// ResolveProcess looks up the owning executable name of every match.
	ResolveProcess bool
}

// ProcessNameFunc resolves a PID to an executable name.
type ProcessNameFunc func(pid uint32) (string, error)

// Enumerator walks the OS window list. It holds no state between calls.
type Enumerator struct {
	windows     platform.Windows
	opts        Options
	processName ProcessNameFunc
}

// New creates an Enumerator over the given windows backend.
func New(windows platform.Windows, opts Options) *Enumerator {
	if opts.Separator == "" {
		opts.Separator = model.DefaultSeparator
	}
	if opts.TitleBuffer <= 0 {
		opts.TitleBuffer = 512
	}
	return &Enumerator{
		windows:     windows,
		opts:        opts,
		processName: systemProcessName,
	}
}

// WithProcessNames replaces the PID lookup used when ResolveProcess is set.
func (e *Enumerator) WithProcessNames(fn ProcessNameFunc) *Enumerator {
	e.processName = fn
	return e
}

// Enumerate returns the matching windows in OS enumeration order. It never
// fails: an OS error ends the walk early and whatever was collected so far
// is returned.
func (e *Enumerator) Enumerate(ctx context.Context) []model.MatchedWindow {
	var result []model.MatchedWindow
	err := e.windows.EnumWindows(func(h model.Handle) bool {
		if w, ok := e.describe(ctx, h); ok {
			result = append(result, w)
		}
		return true
	})
	if err != nil {
		logger.Warnf(ctx, "window enumeration stopped early after %d matches: %v", len(result), err)
	}
	logger.Tracef(ctx, "enumerated %d matching windows", len(result))
	return result
}

// Active returns the foreground window when it is a match.
func (e *Enumerator) Active(ctx context.Context) (model.MatchedWindow, bool) {
	h := e.windows.ForegroundWindow()
	if h == 0 {
		return model.MatchedWindow{}, false
	}
	return e.describe(ctx, h)
}

// Describe reports whether h is a matching window and returns its identity.
func (e *Enumerator) Describe(ctx context.Context, h model.Handle) (model.MatchedWindow, bool) {
	return e.describe(ctx, h)
}

func (e *Enumerator) describe(ctx context.Context, h model.Handle) (model.MatchedWindow, bool) {
	if !e.windows.IsVisible(h) {
		return model.MatchedWindow{}, false
	}
	title, err := e.windows.WindowTitle(h, e.opts.TitleBuffer)
	if err != nil {
		logger.Tracef(ctx, "skipping %#x: %v", uint64(h), err)
		return model.MatchedWindow{}, false
	}
	if !strings.Contains(title, e.opts.Marker) {
		return model.MatchedWindow{}, false
	}
	w, ok := model.ParseTitle(title, e.opts.Separator, h)
	if !ok {
		logger.Debugf(ctx, "skipping %#x: title %q has no separator", uint64(h), title)
		return model.MatchedWindow{}, false
	}
	if _, pid, err := e.windows.WindowThread(h); err == nil {
		w.PID = pid
	}
	if e.opts.ResolveProcess && w.PID != 0 && e.processName != nil {
		name, err := e.processName(w.PID)
		if err != nil {
			logger.Debugf(ctx, "unable to resolve process %d: %v", w.PID, err)
		} else {
			w.Process = name
		}
	}
	return w, true
}

func systemProcessName(pid uint32) (string, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return p.Name()
}
