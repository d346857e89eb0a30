package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/output"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the foreground window if it is a matching window",
	Args:  cobra.NoArgs,
	RunE:  runActive,
}

func init() {
	rootCmd.AddCommand(activeCmd)
}

func runActive(cmd *cobra.Command, args []string) error {
	svc, err := newService(logEmitter)
	if err != nil {
		return err
	}
	result := output.ActiveResult{TS: time.Now().Unix()}
	if w, ok := svc.ActiveWindow(cmd.Context()); ok {
		result.Active = &w
	}
	return output.Print(result)
}
