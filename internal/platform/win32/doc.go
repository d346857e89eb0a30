//go:build windows

// Package win32 provides Windows platform support using user32 via
// golang.org/x/sys/windows. Handles are treated as opaque integers; every
// call validates them first so a destroyed window yields an error instead
// of undefined behaviour.
package win32
