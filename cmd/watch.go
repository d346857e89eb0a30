package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/events"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print an event whenever the active window or focus state changes",
	Long: `Poll the foreground window and print one document per change until
interrupted:

  active_window_changed   the matching window now in front, or null
  focus_state_changed     whether the host or a matching window has focus

Event names and the polling interval come from the notify section of the
config file.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("interval", 0, "Override notify.interval (e.g. 250ms)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if d, _ := cmd.Flags().GetDuration("interval"); d > 0 {
		appConfig.Notify.Interval = d
	}
	svc, err := newService(events.NewWriter(os.Stdout))
	if err != nil {
		return err
	}
	err = svc.Watch(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
