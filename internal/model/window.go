package model

import (
	"fmt"
	"strings"
)

// DefaultSeparator splits a game window title into character name and class.
const DefaultSeparator = " - "

// Handle is an opaque OS window identifier. It is never dereferenced and may
// go stale at any time; every OS call that takes one must tolerate that.
type Handle uint64

// MatchedWindow is one discovered top-level window of the target application.
// Values are rebuilt on every enumeration and never mutated afterwards.
type MatchedWindow struct {
	Title   string `yaml:"title"             json:"title"`
	Handle  Handle `yaml:"hwnd"              json:"hwnd"`
	Name    string `yaml:"name"              json:"name"`
	Label   string `yaml:"class"             json:"class"`
	PID     uint32 `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Process string `yaml:"process,omitempty" json:"process,omitempty"`
}

// ParseTitle splits title on sep and returns a MatchedWindow carrying the
// first two segments. ok is false when the separator does not occur.
func ParseTitle(title, sep string, handle Handle) (w MatchedWindow, ok bool) {
	if sep == "" {
		return MatchedWindow{}, false
	}
	parts := strings.Split(title, sep)
	if len(parts) < 2 {
		return MatchedWindow{}, false
	}
	return MatchedWindow{
		Title:  title,
		Handle: handle,
		Name:   parts[0],
		Label:  parts[1],
	}, true
}

// ClassKey returns the normalized class key for the window's label.
func (w MatchedWindow) ClassKey() string {
	return MapClass(w.Label)
}

func (w MatchedWindow) String() string {
	return fmt.Sprintf("%s (%s) [%#x]", w.Name, w.Label, w.Handle)
}

// IndexOf returns the position of the window with the given handle, or -1.
func IndexOf(windows []MatchedWindow, handle Handle) int {
	for i, w := range windows {
		if w.Handle == handle {
			return i
		}
	}
	return -1
}
