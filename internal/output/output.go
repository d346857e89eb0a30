package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/organizer-cli/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where Print writes. Tests replace it.
var Stdout io.Writer = os.Stdout

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (expected yaml or json)", s)
	}
}

// WindowList is the output of the `list` and `refresh` commands.
type WindowList struct {
	TS      int64                 `yaml:"ts"                json:"ts"`
	Count   int                   `yaml:"count"             json:"count"`
	Cursor  *int                  `yaml:"cursor,omitempty"  json:"cursor,omitempty"`
	Windows []model.MatchedWindow `yaml:"windows"           json:"windows"`
	Changes []model.WindowChange  `yaml:"changes,omitempty" json:"changes,omitempty"`
}

// ActiveResult is the output of the `active` command.
type ActiveResult struct {
	TS     int64                `yaml:"ts"     json:"ts"`
	Active *model.MatchedWindow `yaml:"active" json:"active"`
}

// ActionResult reports the outcome of a focus-changing command.
type ActionResult struct {
	OK      bool                 `yaml:"ok"                json:"ok"`
	Action  string               `yaml:"action"            json:"action"`
	Window  *model.MatchedWindow `yaml:"window,omitempty"  json:"window,omitempty"`
	Message string               `yaml:"message,omitempty" json:"message,omitempty"`
}

// Print serializes v to Stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(Stdout, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(w, v, PrettyOutput)
	case FormatYAML:
		return PrintYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to w as JSON.
// If pretty is true, uses indentation; otherwise single-line.
func PrintJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to w as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
