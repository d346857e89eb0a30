//go:build windows

package win32

import "github.com/mj1618/organizer-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if err := user32.Load(); err != nil {
			return nil, err
		}
		return &platform.Provider{
			Windows:   NewWindows(),
			Focuser:   NewFocuser(),
			Messenger: NewMessenger(),
		}, nil
	}
}
