package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	if c.Match.Marker == "" {
		add("match.marker must not be empty")
	}
	if c.Match.Separator == "" {
		add("match.separator must not be empty")
	}
	if c.Match.TitleBuffer <= 0 {
		add("match.title_buffer must be > 0, got %d", c.Match.TitleBuffer)
	}
	switch c.Click.Strategy {
	case StrategyQueued, StrategyDirect:
	default:
		add("click.strategy: unknown strategy %q (expected queued or direct)", c.Click.Strategy)
	}
	if c.Click.Settle < 0 {
		add("click.settle must not be negative")
	}
	if c.Click.Delay < 0 {
		add("click.delay must not be negative")
	}
	if c.Notify.Interval <= 0 {
		add("notify.interval must be > 0")
	}
	if c.Notify.ActiveEvent == "" || c.Notify.FocusEvent == "" {
		add("notify event names must not be empty")
	}
	for name, sc := range map[string]string{
		"next":                 c.Shortcuts.Next,
		"prev":                 c.Shortcuts.Prev,
		"click_all":            c.Shortcuts.ClickAll,
		"click_all_with_delay": c.Shortcuts.ClickAllWithDelay,
	} {
		if sc != "" && !ValidShortcut(sc) {
			add("shortcuts.%s: invalid accelerator %q", name, sc)
		}
	}
	return result.ErrorOrNil()
}

var modifierKeys = map[string]bool{
	"CTRL": true, "CONTROL": true, "SHIFT": true, "ALT": true, "META": true,
	"SUPER": true, "COMMAND": true, "CMD": true, "COMMANDORCONTROL": true, "CMDORCTRL": true,
}

var namedKeys = map[string]bool{
	"ESCAPE": true, "TAB": true, "CAPSLOCK": true, "SPACE": true, "ENTER": true,
	"BACKSPACE": true, "INSERT": true, "DELETE": true, "HOME": true, "END": true,
	"PAGEUP": true, "PAGEDOWN": true, "ARROWUP": true, "ARROWDOWN": true,
	"ARROWLEFT": true, "ARROWRIGHT": true,
}

const punctuation = "`-=[]\\;',./"

// ValidShortcut reports whether s is a "+"-joined accelerator made only of
// modifiers and known keys, e.g. "Ctrl+Alt+C".
func ValidShortcut(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, "+") {
		if !validKey(strings.ToUpper(part)) {
			return false
		}
	}
	return true
}

func validKey(k string) bool {
	if modifierKeys[k] || namedKeys[k] {
		return true
	}
	if len(k) == 1 {
		c := k[0]
		return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || strings.IndexByte(punctuation, c) >= 0
	}
	if len(k) >= 2 && len(k) <= 3 && k[0] == 'F' {
		var n int
		if _, err := fmt.Sscanf(k[1:], "%d", &n); err == nil && n >= 1 && n <= 12 && fmt.Sprint(n) == k[1:] {
			return true
		}
	}
	return false
}
