// Package config loads the organizer's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// RelPath is the config file location relative to the XDG config home.
const RelPath = "organizer/config.yaml"

// Strategy selects how synthetic clicks are delivered.
type Strategy string

const (
	// StrategyQueued posts button messages carrying the raw screen point.
	StrategyQueued Strategy = "queued"
	// StrategyDirect translates the point to client space and sends the
	// messages straight to the window procedure.
	StrategyDirect Strategy = "direct"
)

// Config is the full configuration file.
type Config struct {
	Match     Match     `yaml:"match"`
	Focus     Focus     `yaml:"focus"`
	Click     Click     `yaml:"click"`
	Notify    Notify    `yaml:"notify"`
	Shortcuts Shortcuts `yaml:"shortcuts"`
}

// Match controls which windows belong to the target application.
type Match struct {
	Marker      string `yaml:"marker"`
	Separator   string `yaml:"separator"`
	TitleBuffer int    `yaml:"title_buffer"`
}

// Focus controls window cycling.
type Focus struct {
	RefreshOnCycle   bool   `yaml:"refresh_on_cycle"`
	FollowForeground bool   `yaml:"follow_foreground"`
	HostTitle        string `yaml:"host_title,omitempty"`
}

// Click controls synthetic input.
type Click struct {
	Strategy   Strategy      `yaml:"strategy"`
	Settle     time.Duration `yaml:"settle"`
	Delay      time.Duration `yaml:"delay"`
	Concurrent bool          `yaml:"concurrent"`
}

// Notify controls the focus-change pollers.
type Notify struct {
	Interval    time.Duration `yaml:"interval"`
	ActiveEvent string        `yaml:"active_event"`
	FocusEvent  string        `yaml:"focus_event"`
}

// Shortcuts are accelerator strings for the host's global hotkeys.
type Shortcuts struct {
	Next              string `yaml:"next"`
	Prev              string `yaml:"prev"`
	ClickAll          string `yaml:"click_all"`
	ClickAllWithDelay string `yaml:"click_all_with_delay"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Match: Match{
			Marker:      "- Beta",
			Separator:   " - ",
			TitleBuffer: 512,
		},
		Focus: Focus{
			RefreshOnCycle:   true,
			FollowForeground: true,
		},
		Click: Click{
			Strategy:   StrategyQueued,
			Settle:     50 * time.Millisecond,
			Delay:      100 * time.Millisecond,
			Concurrent: true,
		},
		Notify: Notify{
			Interval:    500 * time.Millisecond,
			ActiveEvent: "active_window_changed",
			FocusEvent:  "focus_state_changed",
		},
		Shortcuts: Shortcuts{
			Next:              "CommandOrControl+Shift+N",
			Prev:              "CommandOrControl+Shift+P",
			ClickAll:          "Ctrl+Alt+C",
			ClickAllWithDelay: "Ctrl+Alt+Shift+C",
		},
	}
}

// DefaultPath returns the XDG config file path, creating no directories.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, RelPath)
}

// Locate returns the first existing config file in the XDG search path, or
// DefaultPath when there is none.
func Locate() string {
	if p, err := xdg.SearchConfigFile(RelPath); err == nil {
		return p
	}
	return DefaultPath()
}

// Load reads the config at path. An empty path means Locate. A missing
// file yields the defaults; keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = Locate()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write stores cfg at path, creating parent directories.
func Write(path string, cfg Config) error {
	if path == "" {
		var err error
		path, err = xdg.ConfigFile(RelPath)
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
