//go:build windows

package win32

import (
	"fmt"
	"syscall"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procAttachThreadInput   = user32.NewProc("AttachThreadInput")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procShowWindow          = user32.NewProc("ShowWindow")
	procIsIconic            = user32.NewProc("IsIconic")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procPostMessageW        = user32.NewProc("PostMessageW")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procScreenToClient      = user32.NewProc("ScreenToClient")
)

const (
	swRestore = 9

	smtoAbortIfHung = 0x0002
	smtoTimeoutMs   = 1000
)

// point mirrors the Win32 POINT structure.
type point struct {
	X, Y int32
}

func hwnd(h model.Handle) windows.HWND {
	return windows.HWND(uintptr(h))
}

// checkHandle turns a stale handle into ErrInvalidHandle before it reaches
// a call whose failure mode is less clear.
func checkHandle(h model.Handle) error {
	if h == 0 || !windows.IsWindow(hwnd(h)) {
		return fmt.Errorf("%w: %#x", platform.ErrInvalidHandle, uint64(h))
	}
	return nil
}

// callErr builds an error for a BOOL-returning proc that reported failure.
func callErr(name string, lastErr error) error {
	if errno, ok := lastErr.(syscall.Errno); ok && errno != 0 {
		return fmt.Errorf("%s failed: %w", name, errno)
	}
	return fmt.Errorf("%s failed", name)
}
