// Package cli implements the frameeval command-line interface using
// Cobra. It wraps the resolver library for operators: inspecting which
// accelerator would bind on this machine, listing providers, and
// reviewing past resolution attempts.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pydevkit/frameeval/internal/config"
	"github.com/pydevkit/frameeval/internal/log"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "frameeval",
	Short: "Frame-evaluation accelerator resolution for the debugging toolkit",
	Long: `frameeval locates the pre-compiled frame-evaluation accelerator that
matches this machine (platform, interpreter version, pointer width) and
binds its two capability handles for the debugging toolkit.

The resolver tries the default provider name first and falls back to the
platform-qualified name; if neither matches, the toolkit runs
unaccelerated.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      config.DebugDir(),
			RetentionDays: cfg.Debug.RetentionDays,
		}); err != nil {
			// Log init failure is non-fatal, commands still work.
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	defer log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "JSON log output")
}
