package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "- Beta", cfg.Match.Marker)
	assert.Equal(t, " - ", cfg.Match.Separator)
	assert.Equal(t, 512, cfg.Match.TitleBuffer)
	assert.Equal(t, StrategyQueued, cfg.Click.Strategy)
	assert.Equal(t, 50*time.Millisecond, cfg.Click.Settle)
	assert.Equal(t, 100*time.Millisecond, cfg.Click.Delay)
	assert.Equal(t, 500*time.Millisecond, cfg.Notify.Interval)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
match:
  marker: "- Release"
click:
  strategy: direct
  delay: 250ms
notify:
  interval: 1s
  active_event: active_dofus_changed
`))
	require.NoError(t, err)
	assert.Equal(t, "- Release", cfg.Match.Marker)
	assert.Equal(t, " - ", cfg.Match.Separator, "unset keys keep defaults")
	assert.Equal(t, StrategyDirect, cfg.Click.Strategy)
	assert.Equal(t, 250*time.Millisecond, cfg.Click.Delay)
	assert.Equal(t, time.Second, cfg.Notify.Interval)
	assert.Equal(t, "active_dofus_changed", cfg.Notify.ActiveEvent)
	assert.Equal(t, "focus_state_changed", cfg.Notify.FocusEvent)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("click:\n  stratgy: queued\n"))
	assert.Error(t, err)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Match.Marker = ""
	cfg.Match.TitleBuffer = 0
	cfg.Click.Strategy = "teleport"
	cfg.Notify.Interval = 0
	cfg.Shortcuts.Next = "Ctrl+Banana"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"match.marker", "match.title_buffer", "click.strategy", "notify.interval", "shortcuts.next"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidShortcut(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"CommandOrControl+Shift+N", true},
		{"Ctrl+Alt+Shift+C", true},
		{"ctrl+f5", true},
		{"Alt+F12", true},
		{"Shift+Tab", true},
		{"Ctrl+/", true},
		{"Ctrl+F13", false},
		{"Ctrl+F05", false},
		{"Ctrl++", false},
		{"Ctrl+Banana", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidShortcut(tt.in))
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Focus.HostTitle = "Organizer"
	cfg.Click.Settle = 75 * time.Millisecond

	require.NoError(t, Write(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match: [1, 2"), 0o600))
	_, err := Load(path)
	assert.ErrorContains(t, err, path)
}
