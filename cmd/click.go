package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mj1618/organizer-cli/internal/config"
	"github.com/mj1618/organizer-cli/internal/output"
)

var clickAllCmd = &cobra.Command{
	Use:   "click-all",
	Short: "Left-click every matching window at the pointer position",
	Long: `Capture the pointer position once and deliver a left click at that point to
every matching window, whether or not it has focus.

Without --delay the windows are clicked concurrently (unless click.concurrent
is false). With --delay they are clicked one at a time with that pause in
between, which avoids collisions between simultaneous queued clicks.

A window that cannot be clicked is reported and skipped; only a failure to
read the pointer position fails the command.

Examples:
  organizer click-all
  organizer click-all --delay 150
  organizer click-all --strategy direct`,
	Args: cobra.NoArgs,
	RunE: runClickAll,
}

func init() {
	rootCmd.AddCommand(clickAllCmd)
	clickAllCmd.Flags().Int("delay", 0, "Click sequentially with this many milliseconds between windows")
	clickAllCmd.Flags().Var(&clickStrategy, "strategy", "Override click.strategy: queued, direct")
}

var clickStrategy strategyFlag

// strategyFlag rejects unknown strategies while flags are parsed.
type strategyFlag struct {
	value config.Strategy
}

var _ pflag.Value = (*strategyFlag)(nil)

func (f *strategyFlag) String() string { return string(f.value) }

func (f *strategyFlag) Type() string { return "strategy" }

func (f *strategyFlag) Set(s string) error {
	switch st := config.Strategy(s); st {
	case config.StrategyQueued, config.StrategyDirect:
		f.value = st
		return nil
	}
	return fmt.Errorf("unknown strategy %q (expected queued or direct)", s)
}

func runClickAll(cmd *cobra.Command, args []string) error {
	if clickStrategy.value != "" {
		appConfig.Click.Strategy = clickStrategy.value
	}
	var delay *time.Duration
	if cmd.Flags().Changed("delay") {
		ms, _ := cmd.Flags().GetInt("delay")
		if ms < 0 {
			return fmt.Errorf("--delay must be >= 0")
		}
		d := time.Duration(ms) * time.Millisecond
		delay = &d
	}

	svc, err := newService(logEmitter)
	if err != nil {
		return err
	}
	report, err := svc.ClickAll(cmd.Context(), delay)
	if err != nil {
		return err
	}
	return output.Print(report)
}
