//go:build windows

package cmd

// Registers the user32 backend with platform.NewProviderFunc.
import _ "github.com/mj1618/organizer-cli/internal/platform/win32"
