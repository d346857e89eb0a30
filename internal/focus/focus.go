// Package focus moves a window to the foreground using thread input
// attachment, which lets a background process take focus.
package focus

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
)

var (
	ErrAttachFailed     = errors.New("failed to attach thread input")
	ErrDetachFailed     = errors.New("failed to detach thread input")
	ErrRestoreFailed    = errors.New("failed to restore window")
	ErrForegroundFailed = errors.New("failed to set foreground window")
)

// Controller forces windows to the foreground.
type Controller struct {
	windows platform.Windows
	focuser platform.Focuser
}

// NewController creates a Controller over the given backends.
func NewController(windows platform.Windows, focuser platform.Focuser) *Controller {
	return &Controller{windows: windows, focuser: focuser}
}

// ForceForeground makes h the foreground window.
//
// The caller's input is attached to the thread owning h, the window is
// restored and brought forward, and the input is detached again on every
// path once the attach succeeded. A failed attach aborts before the window
// is touched. A failed detach is reported even though the window may
// already be in front.
func (c *Controller) ForceForeground(ctx context.Context, h model.Handle) (_err error) {
	// Attach and detach must run on the same OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	target, _, err := c.windows.WindowThread(h)
	if err != nil {
		return fmt.Errorf("%w: resolving owner of %#x: %w", ErrAttachFailed, uint64(h), err)
	}
	self := c.focuser.CurrentThreadID()

	if self != target {
		if err := c.focuser.AttachThreadInput(self, target, true); err != nil {
			return fmt.Errorf("%w %d->%d: %w", ErrAttachFailed, self, target, err)
		}
		logger.Tracef(ctx, "attached input %d->%d", self, target)
		defer func() {
			if err := c.focuser.AttachThreadInput(self, target, false); err != nil {
				logger.Errorf(ctx, "unable to detach input %d->%d: %v", self, target, err)
				var result *multierror.Error
				if _err != nil {
					result = multierror.Append(result, _err)
				}
				result = multierror.Append(result, fmt.Errorf("%w %d->%d: %w", ErrDetachFailed, self, target, err))
				_err = result.ErrorOrNil()
			}
		}()
	}

	if err := c.focuser.Restore(h); err != nil {
		return fmt.Errorf("%w %#x: %w", ErrRestoreFailed, uint64(h), err)
	}
	if err := c.focuser.SetForeground(h); err != nil {
		return fmt.Errorf("%w %#x: %w", ErrForegroundFailed, uint64(h), err)
	}
	logger.Debugf(ctx, "focused %#x", uint64(h))
	return nil
}
