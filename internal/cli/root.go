// Package cli implements the repohue command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/repohue/repohue/internal/config"
	"github.com/repohue/repohue/internal/logging"
)

var (
	flagConfig   string
	flagJSON     bool
	flagLogLevel string

	appConfig *config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "repohue",
	Short: "Resolve per-repository window color palettes",
	Long: `repohue resolves symbolic palette slots to concrete colors for
themeable UI elements, derives stable colors from repository and branch
identity, and previews palette profiles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		appConfig = cfg

		level := cfg.LogLevel
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		logger = logging.New(os.Stderr, level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// IsJSONOutput reports whether machine-readable output was requested.
func IsJSONOutput() bool {
	return flagJSON
}
