package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/config"
	"github.com/mj1618/organizer-cli/internal/logging"
	"github.com/mj1618/organizer-cli/internal/output"
	"github.com/mj1618/organizer-cli/internal/version"
)

// skipConfigAnnotation marks commands that must run even when the config
// file is invalid.
const skipConfigAnnotation = "organizer/skip-config"

var (
	// LoggerLevel is set by --log-level.
	LoggerLevel = logger.LevelWarning

	// appConfig is the configuration loaded by the root pre-run hook.
	appConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "Cycle focus between and click into a family of application windows",
	Long: `Discover every window of a multi-instance application, cycle keyboard focus
between them even from the background, and send the same left click to all of
them at once.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)),
	)
	belt.Flush(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/organizer/config.yaml)")
	rootCmd.PersistentFlags().Var(&LoggerLevel, "log-level", "Log level: trace, debug, info, warning, error, fatal, panic")
	rootCmd.PersistentPreRunE = persistentPreRun
}

func persistentPreRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.Attach(ctx, logging.New(os.Stderr, LoggerLevel))
	cmd.SetContext(ctx)
	logger.Debugf(ctx, "log-level: %v", LoggerLevel)

	// Use the root persistent flag directly to avoid conflicts with
	// subcommand local flags.
	format, _ := rootCmd.PersistentFlags().GetString("format")
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f
	output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

	if _, skip := cmd.Annotations[skipConfigAnnotation]; skip {
		return nil
	}
	path, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}
