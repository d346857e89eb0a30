//go:build windows

package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/organizer-cli/internal/platform"
)

func TestInit_RegistersProvider(t *testing.T) {
	require.NotNil(t, platform.NewProviderFunc)

	p, err := platform.NewProvider()
	require.NoError(t, err)
	assert.NotNil(t, p.Windows)
	assert.NotNil(t, p.Focuser)
	assert.NotNil(t, p.Messenger)
}

func TestWindowTitle_StaleHandle(t *testing.T) {
	_, err := NewWindows().WindowTitle(0, 64)
	assert.ErrorIs(t, err, platform.ErrInvalidHandle)
}

func TestWindowTitle_Foreground(t *testing.T) {
	h := NewWindows().ForegroundWindow()
	if h == 0 {
		t.Skip("no foreground window in this session")
	}
	_, err := NewWindows().WindowTitle(h, 512)
	assert.NoError(t, err)
}
