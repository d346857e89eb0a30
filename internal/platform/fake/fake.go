// Package fake provides a scriptable in-memory desktop implementing every
// platform capability interface. It records the calls it receives so tests
// can assert on ordering and side effects.
package fake

import (
	"fmt"
	"sync"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
)

// Window is one simulated top-level window.
type Window struct {
	Handle  model.Handle
	Title   string
	Visible bool
	Iconic  bool
	TID     uint32
	PID     uint32
	// Origin of the client area in screen coordinates.
	Origin platform.Point
}

// Message is a recorded PostMessage/SendMessage call.
type Message struct {
	Handle model.Handle
	Msg    uint32
	WParam uintptr
	LParam uintptr
	Sent   bool
}

// Desktop is a fake OS window system. The zero value is not usable; call New.
type Desktop struct {
	mu sync.Mutex

	windows    []*Window
	foreground model.Handle
	cursor     platform.Point
	threadID   uint32
	attached   map[[2]uint32]bool

	// Injected failures. A nil map means no failures of that kind.
	FailEnum          error
	FailCursor        error
	FailAttach        error
	FailDetach        error
	FailRestore       map[model.Handle]error
	FailForeground    map[model.Handle]error
	FailPost          map[model.Handle]error
	FailTranslate     map[model.Handle]error
	ForegroundScript  []model.Handle
	foregroundScriptI int

	calls    []string
	messages []Message
}

// New creates an empty desktop whose caller runs on thread 1.
func New(windows ...Window) *Desktop {
	d := &Desktop{
		threadID: 1,
		attached: make(map[[2]uint32]bool),
	}
	for _, w := range windows {
		d.Add(w)
	}
	return d
}

// Provider wraps the desktop in a platform.Provider.
func (d *Desktop) Provider() *platform.Provider {
	return &platform.Provider{Windows: d, Focuser: d, Messenger: d}
}

// Add inserts a window at the end of the enumeration order.
func (d *Desktop) Add(w Window) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := w
	d.windows = append(d.windows, &cp)
}

// Remove destroys a window; its handle becomes stale.
func (d *Desktop) Remove(h model.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, w := range d.windows {
		if w.Handle == h {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			return
		}
	}
}

// SetForegroundHandle sets the foreground window without recording a call.
func (d *Desktop) SetForegroundHandle(h model.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.foreground = h
}

// SetCursor moves the simulated pointer.
func (d *Desktop) SetCursor(p platform.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = p
}

// Calls returns the recorded capability calls in order.
func (d *Desktop) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// Messages returns the recorded window messages in delivery order.
func (d *Desktop) Messages() []Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Message(nil), d.messages...)
}

// Attached reports whether an input attachment from->to is still active.
func (d *Desktop) Attached(from, to uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attached[[2]uint32{from, to}]
}

func (d *Desktop) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *Desktop) find(h model.Handle) (*Window, error) {
	for _, w := range d.windows {
		if w.Handle == h {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %#x", platform.ErrInvalidHandle, uint64(h))
}

// platform.Windows

func (d *Desktop) EnumWindows(fn func(h model.Handle) bool) error {
	d.mu.Lock()
	if d.FailEnum != nil {
		err := d.FailEnum
		d.mu.Unlock()
		return err
	}
	handles := make([]model.Handle, len(d.windows))
	for i, w := range d.windows {
		handles[i] = w.Handle
	}
	d.record("enum")
	d.mu.Unlock()

	for _, h := range handles {
		if !fn(h) {
			break
		}
	}
	return nil
}

func (d *Desktop) WindowTitle(h model.Handle, maxLen int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.find(h)
	if err != nil {
		return "", err
	}
	title := []rune(w.Title)
	if maxLen > 0 && len(title) > maxLen {
		title = title[:maxLen]
	}
	return string(title), nil
}

func (d *Desktop) IsVisible(h model.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.find(h)
	return err == nil && w.Visible
}

func (d *Desktop) WindowThread(h model.Handle) (tid, pid uint32, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.find(h)
	if err != nil {
		return 0, 0, err
	}
	return w.TID, w.PID, nil
}

// ForegroundWindow returns the next value of ForegroundScript when one is
// set, otherwise the current foreground window.
func (d *Desktop) ForegroundWindow() model.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.foregroundScriptI < len(d.ForegroundScript) {
		h := d.ForegroundScript[d.foregroundScriptI]
		d.foregroundScriptI++
		return h
	}
	return d.foreground
}

// platform.Focuser

func (d *Desktop) CurrentThreadID() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.threadID
}

func (d *Desktop) AttachThreadInput(from, to uint32, attach bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if attach {
		d.record("attach %d->%d", from, to)
		if d.FailAttach != nil {
			return d.FailAttach
		}
		d.attached[[2]uint32{from, to}] = true
		return nil
	}
	d.record("detach %d->%d", from, to)
	if d.FailDetach != nil {
		return d.FailDetach
	}
	delete(d.attached, [2]uint32{from, to})
	return nil
}

func (d *Desktop) Restore(h model.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("restore %#x", uint64(h))
	if err := d.FailRestore[h]; err != nil {
		return err
	}
	w, err := d.find(h)
	if err != nil {
		return err
	}
	w.Iconic = false
	return nil
}

func (d *Desktop) SetForeground(h model.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("foreground %#x", uint64(h))
	if err := d.FailForeground[h]; err != nil {
		return err
	}
	if _, err := d.find(h); err != nil {
		return err
	}
	d.foreground = h
	return nil
}

// platform.Messenger

func (d *Desktop) PostMessage(h model.Handle, msg uint32, wparam, lparam uintptr) error {
	return d.deliver(h, msg, wparam, lparam, false)
}

func (d *Desktop) SendMessage(h model.Handle, msg uint32, wparam, lparam uintptr) error {
	return d.deliver(h, msg, wparam, lparam, true)
}

func (d *Desktop) deliver(h model.Handle, msg uint32, wparam, lparam uintptr, sent bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.FailPost[h]; err != nil {
		return err
	}
	if _, err := d.find(h); err != nil {
		return err
	}
	d.messages = append(d.messages, Message{Handle: h, Msg: msg, WParam: wparam, LParam: lparam, Sent: sent})
	return nil
}

func (d *Desktop) CursorPos() (platform.Point, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("cursor")
	if d.FailCursor != nil {
		return platform.Point{}, d.FailCursor
	}
	return d.cursor, nil
}

func (d *Desktop) ScreenToClient(h model.Handle, p platform.Point) (platform.Point, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.FailTranslate[h]; err != nil {
		return platform.Point{}, err
	}
	w, err := d.find(h)
	if err != nil {
		return platform.Point{}, err
	}
	return platform.Point{X: p.X - w.Origin.X, Y: p.Y - w.Origin.Y}, nil
}
