package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/output"
	"github.com/mj1618/organizer-cli/internal/organizer"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-enumerate windows into the cycling registry and show the cursor",
	Args:  cobra.NoArgs,
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	svc, err := newService(logEmitter)
	if err != nil {
		return err
	}
	result, err := refreshResult(cmd, svc)
	if err != nil {
		return err
	}
	return output.Print(result)
}

func refreshResult(cmd *cobra.Command, svc *organizer.Service) (output.WindowList, error) {
	ctx := cmd.Context()
	windows, changes, err := svc.RefreshWithChanges(ctx)
	if err != nil {
		return output.WindowList{}, err
	}
	if windows == nil {
		windows = []model.MatchedWindow{}
	}
	result := output.WindowList{
		TS:      time.Now().Unix(),
		Count:   len(windows),
		Windows: windows,
		Changes: changes,
	}
	cur, err := svc.Registry().Cursor(ctx)
	if err != nil {
		return output.WindowList{}, err
	}
	if cur >= 0 {
		result.Cursor = &cur
	}
	return result, nil
}
