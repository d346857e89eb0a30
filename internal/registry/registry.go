// Package registry holds the last enumerated window set and a cursor into it.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"golang.org/x/sync/semaphore"

	"github.com/mj1618/organizer-cli/internal/model"
)

// ErrLockUnavailable is returned when the registry lock could not be taken
// before the context ended. The request may be retried.
var ErrLockUnavailable = errors.New("window registry is busy")

// Direction is a cursor movement.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Source produces a fresh window list. It is called without the lock held.
type Source interface {
	Enumerate(ctx context.Context) []model.MatchedWindow
}

// Registry is the process-wide window list. All state is guarded by a
// weighted semaphore of size one, held only across in-memory updates.
type Registry struct {
	source Source
	sem    *semaphore.Weighted

	windows []model.MatchedWindow
	cursor  int
}

// New creates an empty registry that refreshes from source.
func New(source Source) *Registry {
	return &Registry{
		source: source,
		sem:    semaphore.NewWeighted(1),
	}
}

func (r *Registry) lock(ctx context.Context) error {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %v", ErrLockUnavailable, err)
	}
	return nil
}

func (r *Registry) unlock() {
	r.sem.Release(1)
}

// Refresh re-enumerates and replaces the window list. The cursor is reset to
// zero when the size changed or the old cursor no longer fits.
func (r *Registry) Refresh(ctx context.Context) ([]model.MatchedWindow, error) {
	curr, _, err := r.RefreshDiff(ctx)
	return curr, err
}

// RefreshDiff is Refresh that also returns the list it replaced.
func (r *Registry) RefreshDiff(ctx context.Context) (curr, prev []model.MatchedWindow, err error) {
	windows := r.source.Enumerate(ctx)
	prev, err = r.Replace(ctx, windows)
	if err != nil {
		return nil, nil, err
	}
	return clone(windows), prev, nil
}

// Replace installs windows as the current list using the Refresh cursor rules
// and returns the list it replaced.
func (r *Registry) Replace(ctx context.Context, windows []model.MatchedWindow) ([]model.MatchedWindow, error) {
	if err := r.lock(ctx); err != nil {
		return nil, err
	}
	defer r.unlock()

	if len(windows) != len(r.windows) || r.cursor >= len(windows) {
		r.cursor = 0
	}
	prev := r.windows
	r.windows = clone(windows)
	logger.Debugf(ctx, "registry holds %d windows, cursor at %d", len(r.windows), r.cursor)
	return prev, nil
}

// Advance moves the cursor one step with wraparound and returns the window
// now under it. ok is false when the list is empty.
func (r *Registry) Advance(ctx context.Context, dir Direction) (w model.MatchedWindow, ok bool, err error) {
	if err := r.lock(ctx); err != nil {
		return model.MatchedWindow{}, false, err
	}
	defer r.unlock()

	n := len(r.windows)
	if n == 0 {
		return model.MatchedWindow{}, false, nil
	}
	switch dir {
	case Backward:
		r.cursor = (r.cursor - 1 + n) % n
	default:
		r.cursor = (r.cursor + 1) % n
	}
	return r.windows[r.cursor], true, nil
}

// Current returns the window under the cursor.
func (r *Registry) Current(ctx context.Context) (model.MatchedWindow, bool, error) {
	if err := r.lock(ctx); err != nil {
		return model.MatchedWindow{}, false, err
	}
	defer r.unlock()

	if len(r.windows) == 0 {
		return model.MatchedWindow{}, false, nil
	}
	return r.windows[r.cursor], true, nil
}

// Cursor returns the cursor index, or -1 when the list is empty.
func (r *Registry) Cursor(ctx context.Context) (int, error) {
	if err := r.lock(ctx); err != nil {
		return 0, err
	}
	defer r.unlock()

	if len(r.windows) == 0 {
		return -1, nil
	}
	return r.cursor, nil
}

// Seek moves the cursor onto the window with handle h. It reports false and
// leaves the cursor alone when h is not in the list.
func (r *Registry) Seek(ctx context.Context, h model.Handle) (bool, error) {
	if err := r.lock(ctx); err != nil {
		return false, err
	}
	defer r.unlock()

	i := model.IndexOf(r.windows, h)
	if i < 0 {
		return false, nil
	}
	r.cursor = i
	return true, nil
}

// Windows returns a copy of the current list.
func (r *Registry) Windows(ctx context.Context) ([]model.MatchedWindow, error) {
	if err := r.lock(ctx); err != nil {
		return nil, err
	}
	defer r.unlock()
	return clone(r.windows), nil
}

func clone(windows []model.MatchedWindow) []model.MatchedWindow {
	if windows == nil {
		return nil
	}
	return append([]model.MatchedWindow(nil), windows...)
}
