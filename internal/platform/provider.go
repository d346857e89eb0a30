package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Windows   Windows
	Focuser   Focuser
	Messenger Messenger
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("organizer has no window backend for %s/%s; it runs on windows only", runtime.GOOS, runtime.GOARCH)

// ErrInvalidHandle is returned when an OS call is given a handle that no
// longer identifies a window.
var ErrInvalidHandle = errors.New("invalid window handle")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
