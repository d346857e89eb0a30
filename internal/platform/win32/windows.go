//go:build windows

package win32

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/mj1618/organizer-cli/internal/model"
	"golang.org/x/sys/windows"
)

// WindowsAPI implements the platform.Windows interface.
type WindowsAPI struct{}

// NewWindows creates a new window query backend.
func NewWindows() *WindowsAPI {
	return &WindowsAPI{}
}

// enumState is handed to the shared EnumWindows callback through LPARAM.
type enumState struct {
	fn func(model.Handle) bool
}

// The runtime caps the number of callbacks a process may create, so one
// callback is shared by every enumeration.
var (
	enumCallbackOnce sync.Once
	enumCallback     uintptr
)

func enumWindowsProc(h windows.HWND, lparam uintptr) uintptr {
	state := (*enumState)(unsafe.Pointer(lparam))
	if state.fn(model.Handle(h)) {
		return 1
	}
	return 0
}

func (w *WindowsAPI) EnumWindows(fn func(h model.Handle) bool) error {
	enumCallbackOnce.Do(func() {
		enumCallback = windows.NewCallback(enumWindowsProc)
	})
	stopped := false
	state := &enumState{fn: func(h model.Handle) bool {
		if !fn(h) {
			stopped = true
			return false
		}
		return true
	}}
	if err := windows.EnumWindows(enumCallback, unsafe.Pointer(state)); err != nil && !stopped {
		return fmt.Errorf("EnumWindows: %w", err)
	}
	return nil
}

func (w *WindowsAPI) WindowTitle(h model.Handle, maxLen int) (string, error) {
	if err := checkHandle(h); err != nil {
		return "", err
	}
	if maxLen <= 0 {
		maxLen = 512
	}
	buf := make([]uint16, maxLen)
	n, _, lastErr := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		// An empty title also returns zero, with the last error cleared.
		if errno, ok := lastErr.(syscall.Errno); ok && errno != 0 {
			return "", callErr("GetWindowTextW", lastErr)
		}
		return "", nil
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (w *WindowsAPI) IsVisible(h model.Handle) bool {
	return windows.IsWindowVisible(hwnd(h))
}

func (w *WindowsAPI) WindowThread(h model.Handle) (tid, pid uint32, err error) {
	if err := checkHandle(h); err != nil {
		return 0, 0, err
	}
	tid, err = windows.GetWindowThreadProcessId(hwnd(h), &pid)
	if tid == 0 {
		return 0, 0, fmt.Errorf("GetWindowThreadProcessId: %w", err)
	}
	return tid, pid, nil
}

func (w *WindowsAPI) ForegroundWindow() model.Handle {
	return model.Handle(windows.GetForegroundWindow())
}
