package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List matching windows",
	Long:  "List the visible windows whose title carries the configured marker, in OS enumeration order.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("class", "", "Only list windows whose class key matches (e.g. cra, iop)")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newService(logEmitter)
	if err != nil {
		return err
	}
	class, _ := cmd.Flags().GetString("class")

	windows := svc.ListWindows(cmd.Context())
	if class != "" {
		windows = filterByClass(windows, model.MapClass(class))
	}
	if windows == nil {
		windows = []model.MatchedWindow{}
	}
	return output.Print(output.WindowList{
		TS:      time.Now().Unix(),
		Count:   len(windows),
		Windows: windows,
	})
}

func filterByClass(windows []model.MatchedWindow, key string) []model.MatchedWindow {
	var out []model.MatchedWindow
	for _, w := range windows {
		if w.ClassKey() == key {
			out = append(out, w)
		}
	}
	return out
}
