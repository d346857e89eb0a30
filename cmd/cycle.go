package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/output"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Focus the next matching window",
	Long: `Advance the window cursor by one, wrapping around at the end, and bring that
window to the foreground. Does nothing when no windows match.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(logEmitter)
		if err != nil {
			return err
		}
		w, err := svc.Next(cmd.Context())
		if err != nil {
			return err
		}
		return output.Print(cycleResult("next", w))
	},
}

var prevCmd = &cobra.Command{
	Use:     "prev",
	Aliases: []string{"previous"},
	Short:   "Focus the previous matching window",
	Long: `Move the window cursor back by one, wrapping around at the start, and bring
that window to the foreground. Does nothing when no windows match.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(logEmitter)
		if err != nil {
			return err
		}
		w, err := svc.Previous(cmd.Context())
		if err != nil {
			return err
		}
		return output.Print(cycleResult("prev", w))
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
}
