package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/organizer"
	"github.com/mj1618/organizer-cli/internal/output"
	"github.com/mj1618/organizer-cli/internal/platform"
	"github.com/mj1618/organizer-cli/internal/server"
)

// DoResult is the YAML output of a batch do command.
type DoResult struct {
	OK        bool         `yaml:"ok"                  json:"ok"`
	Action    string       `yaml:"action"              json:"action"`
	Steps     int          `yaml:"steps"               json:"steps"`
	Completed int          `yaml:"completed"           json:"completed"`
	Error     string       `yaml:"error,omitempty"     json:"error,omitempty"`
	Results   []StepResult `yaml:"results"             json:"results"`
}

// StepResult is the output for a single step within a batch.
type StepResult struct {
	Step    int                  `yaml:"step"               json:"step"`
	OK      bool                 `yaml:"ok"                 json:"ok"`
	Action  string               `yaml:"action"             json:"action"`
	Error   string               `yaml:"error,omitempty"    json:"error,omitempty"`
	Window  *model.MatchedWindow `yaml:"window,omitempty"   json:"window,omitempty"`
	Count   int                  `yaml:"count,omitempty"    json:"count,omitempty"`
	Clicked int                  `yaml:"clicked,omitempty"  json:"clicked,omitempty"`
	Failed  int                  `yaml:"failed,omitempty"   json:"failed,omitempty"`
	Elapsed string               `yaml:"elapsed,omitempty"  json:"elapsed,omitempty"`
}

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple actions in a batch",
	Long: `Execute a sequence of actions from a YAML list on stdin.

Each step is an action name with its parameters as a map. Steps execute
sequentially against one shared window registry, so the cursor moved by one
step is seen by the next. By default execution stops on the first error.

Supported step types: next, prev, focus, click-all, refresh, sleep

Example:
  organizer do <<'EOF'
  - refresh: {}
  - next: {}
  - click-all: { delay: 150 }
  - sleep: { ms: 500 }
  - focus: { hwnd: "0x1a2b3c" }
  EOF`,
	Args: cobra.NoArgs,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error (default: true)")
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	// Read YAML steps from stdin
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	rawSteps, err := parseSteps(data)
	if err != nil {
		return err
	}

	svc, err := newService(logEmitter)
	if err != nil {
		return err
	}

	return output.Print(runSteps(cmd.Context(), svc, rawSteps, stopOnError))
}

// parseSteps decodes a YAML list of single-key step maps.
func parseSteps(data []byte) ([]map[string]map[string]interface{}, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no steps provided on stdin: pipe a YAML list of actions")
	}
	var rawSteps []map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &rawSteps); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(rawSteps) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list of actions")
	}
	return rawSteps, nil
}

// runSteps executes every step and summarizes the outcome.
func runSteps(ctx context.Context, svc *organizer.Service, rawSteps []map[string]map[string]interface{}, stopOnError bool) DoResult {
	results := make([]StepResult, 0, len(rawSteps))
	completed := 0
	hasFailure := false
	var lastErr string

	for i, step := range rawSteps {
		stepNum := i + 1

		if len(step) != 1 {
			errMsg := fmt.Sprintf("step %d: expected exactly one action key, got %d", stepNum, len(step))
			results = append(results, StepResult{Step: stepNum, OK: false, Error: errMsg})
			hasFailure = true
			if stopOnError {
				lastErr = errMsg
				break
			}
			continue
		}

		var stop bool
		for action, params := range step {
			if params == nil {
				params = map[string]interface{}{}
			}
			result, err := executeStep(ctx, svc, action, params)
			result.Step = stepNum
			if result.Action == "" {
				result.Action = action
			}
			if err != nil {
				result.OK = false
				result.Error = err.Error()
				results = append(results, result)
				hasFailure = true
				if stopOnError {
					lastErr = fmt.Sprintf("step %d: %s", stepNum, err.Error())
					stop = true
				}
			} else {
				result.OK = true
				completed++
				results = append(results, result)
			}
		}
		if stop {
			break
		}
	}

	return DoResult{
		OK:        !hasFailure,
		Action:    "do",
		Steps:     len(rawSteps),
		Completed: completed,
		Error:     lastErr,
		Results:   results,
	}
}

// executeStep dispatches a single step to the appropriate handler.
func executeStep(ctx context.Context, svc *organizer.Service, action string, params map[string]interface{}) (StepResult, error) {
	switch action {
	case "next":
		w, err := svc.Next(ctx)
		return StepResult{Action: action, Window: w}, err
	case "prev", "previous":
		w, err := svc.Previous(ctx)
		return StepResult{Action: "prev", Window: w}, err
	case "focus":
		return executeFocus(ctx, svc, params)
	case "click-all":
		return executeClickAll(ctx, svc, params)
	case "refresh":
		windows, err := svc.Refresh(ctx)
		return StepResult{Action: action, Count: len(windows)}, err
	case "sleep":
		return executeSleep(ctx, params)
	default:
		return StepResult{Action: action}, fmt.Errorf("unknown step type: %s (supported: next, prev, focus, click-all, refresh, sleep)", action)
	}
}

func executeFocus(ctx context.Context, svc *organizer.Service, params map[string]interface{}) (StepResult, error) {
	h, err := platform.ParseHandle(server.StringParam(params, "hwnd", ""))
	if err != nil {
		return StepResult{Action: "focus"}, err
	}
	if err := svc.Focus(ctx, h); err != nil {
		return StepResult{Action: "focus"}, err
	}
	result := StepResult{Action: "focus"}
	if w, ok := svc.ActiveWindow(ctx); ok {
		result.Window = &w
	}
	return result, nil
}

func executeClickAll(ctx context.Context, svc *organizer.Service, params map[string]interface{}) (StepResult, error) {
	var delay *time.Duration
	if server.HasParam(params, "delay") {
		ms := server.IntParam(params, "delay", 0)
		if ms < 0 {
			return StepResult{Action: "click-all"}, fmt.Errorf("delay must be >= 0")
		}
		d := time.Duration(ms) * time.Millisecond
		delay = &d
	}
	report, err := svc.ClickAll(ctx, delay)
	if err != nil {
		return StepResult{Action: "click-all"}, err
	}
	return StepResult{Action: "click-all", Clicked: len(report.Clicked), Failed: len(report.Failed)}, nil
}

func executeSleep(ctx context.Context, params map[string]interface{}) (StepResult, error) {
	ms := server.IntParam(params, "ms", 0)
	if ms <= 0 {
		return StepResult{Action: "sleep"}, fmt.Errorf("ms must be > 0")
	}
	t := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return StepResult{Action: "sleep"}, ctx.Err()
	case <-t.C:
	}
	return StepResult{Action: "sleep", Elapsed: fmt.Sprintf("%dms", ms)}, nil
}
