package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/output"
	"github.com/mj1618/organizer-cli/internal/platform"
)

var focusCmd = &cobra.Command{
	Use:   "focus <hwnd>",
	Short: "Bring a window to the foreground",
	Long: `Bring the window with the given handle to the foreground, restoring it if
it is minimized. The handle may be decimal or 0x-prefixed hex, as printed by
"organizer list".`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	h, err := platform.ParseHandle(args[0])
	if err != nil {
		return err
	}
	svc, err := newService(logEmitter)
	if err != nil {
		return err
	}
	if err := svc.Focus(cmd.Context(), h); err != nil {
		return err
	}
	result := output.ActionResult{OK: true, Action: "focus"}
	if w, ok := svc.ActiveWindow(cmd.Context()); ok {
		result.Window = &w
	}
	return output.Print(result)
}

// cycleResult converts the outcome of next/prev into an ActionResult.
func cycleResult(action string, w *model.MatchedWindow) output.ActionResult {
	result := output.ActionResult{OK: true, Action: action, Window: w}
	if w == nil {
		result.Message = "no matching windows"
	}
	return result
}
