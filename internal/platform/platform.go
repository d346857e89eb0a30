package platform

import "github.com/mj1618/organizer-cli/internal/model"

// Windows queries top-level windows. Every method must tolerate a stale
// handle by returning an error (or false), never by crashing.
type Windows interface {
	// EnumWindows calls fn for each top-level window in OS enumeration order
	// until fn returns false.
	EnumWindows(fn func(h model.Handle) bool) error

	// WindowTitle returns at most maxLen characters of the window's title.
	WindowTitle(h model.Handle, maxLen int) (string, error)

	IsVisible(h model.Handle) bool

	// WindowThread returns the IDs of the thread and process owning the window.
	WindowThread(h model.Handle) (tid, pid uint32, err error)

	// ForegroundWindow returns the window currently receiving keyboard input, or 0.
	ForegroundWindow() model.Handle
}

// Focuser changes the foreground window.
type Focuser interface {
	// CurrentThreadID returns the OS thread ID of the caller. Callers must
	// lock the goroutine to its OS thread for the ID to stay meaningful.
	CurrentThreadID() uint32
	AttachThreadInput(from, to uint32, attach bool) error
	Restore(h model.Handle) error
	SetForeground(h model.Handle) error
}

// Messenger delivers synthetic window messages.
type Messenger interface {
	// PostMessage queues a message on the window's thread and returns immediately.
	PostMessage(h model.Handle, msg uint32, wparam, lparam uintptr) error
	// SendMessage calls the window procedure directly and waits for it.
	SendMessage(h model.Handle, msg uint32, wparam, lparam uintptr) error
	CursorPos() (Point, error)
	ScreenToClient(h model.Handle, p Point) (Point, error)
}
