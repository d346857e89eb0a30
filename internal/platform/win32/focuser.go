//go:build windows

package win32

import (
	"github.com/mj1618/organizer-cli/internal/model"
	"golang.org/x/sys/windows"
)

// Focuser implements the platform.Focuser interface.
type Focuser struct{}

// NewFocuser creates a new foreground-window backend.
func NewFocuser() *Focuser {
	return &Focuser{}
}

func (f *Focuser) CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

func (f *Focuser) AttachThreadInput(from, to uint32, attach bool) error {
	var flag uintptr
	if attach {
		flag = 1
	}
	r, _, lastErr := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
	if r == 0 {
		return callErr("AttachThreadInput", lastErr)
	}
	return nil
}

// Restore un-minimizes the window. Windows that are not iconic are left
// alone so a maximized window keeps its size.
func (f *Focuser) Restore(h model.Handle) error {
	if err := checkHandle(h); err != nil {
		return err
	}
	iconic, _, _ := procIsIconic.Call(uintptr(h))
	if iconic == 0 {
		return nil
	}
	// ShowWindow returns the previous visibility, not success.
	procShowWindow.Call(uintptr(h), swRestore)
	return checkHandle(h)
}

func (f *Focuser) SetForeground(h model.Handle) error {
	if err := checkHandle(h); err != nil {
		return err
	}
	r, _, lastErr := procSetForegroundWindow.Call(uintptr(h))
	if r == 0 {
		return callErr("SetForegroundWindow", lastErr)
	}
	return nil
}
