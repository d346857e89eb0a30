package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/config"
	"github.com/mj1618/organizer-cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(appConfig)
	},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the configuration file path in use",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configPath())
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath()
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Write(path, config.Default()); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:         "check",
	Short:       "Validate the configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := config.Load(path); err != nil {
			return err
		}
		return output.Print(output.ActionResult{OK: true, Action: "config check", Message: path})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd, configCheckCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

// configPath returns --config or the located default.
func configPath() string {
	if p, _ := rootCmd.PersistentFlags().GetString("config"); p != "" {
		return p
	}
	return config.Locate()
}
