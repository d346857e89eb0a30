//go:build windows

package win32

import (
	"unsafe"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
)

// Messenger implements the platform.Messenger interface.
type Messenger struct{}

// NewMessenger creates a new window message backend.
func NewMessenger() *Messenger {
	return &Messenger{}
}

func (m *Messenger) PostMessage(h model.Handle, msg uint32, wparam, lparam uintptr) error {
	if err := checkHandle(h); err != nil {
		return err
	}
	r, _, lastErr := procPostMessageW.Call(uintptr(h), uintptr(msg), wparam, lparam)
	if r == 0 {
		return callErr("PostMessageW", lastErr)
	}
	return nil
}

// SendMessage uses SendMessageTimeoutW so a hung target cannot block the
// caller indefinitely.
func (m *Messenger) SendMessage(h model.Handle, msg uint32, wparam, lparam uintptr) error {
	if err := checkHandle(h); err != nil {
		return err
	}
	var result uintptr
	r, _, lastErr := procSendMessageTimeoutW.Call(
		uintptr(h),
		uintptr(msg),
		wparam,
		lparam,
		smtoAbortIfHung,
		smtoTimeoutMs,
		uintptr(unsafe.Pointer(&result)),
	)
	if r == 0 {
		return callErr("SendMessageTimeoutW", lastErr)
	}
	return nil
}

func (m *Messenger) CursorPos() (platform.Point, error) {
	var p point
	r, _, lastErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return platform.Point{}, callErr("GetCursorPos", lastErr)
	}
	return platform.Point{X: p.X, Y: p.Y}, nil
}

func (m *Messenger) ScreenToClient(h model.Handle, sp platform.Point) (platform.Point, error) {
	if err := checkHandle(h); err != nil {
		return platform.Point{}, err
	}
	p := point{X: sp.X, Y: sp.Y}
	r, _, lastErr := procScreenToClient.Call(uintptr(h), uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return platform.Point{}, callErr("ScreenToClient", lastErr)
	}
	return platform.Point{X: p.X, Y: p.Y}, nil
}
