package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydevkit/frameeval/internal/config"
	"github.com/pydevkit/frameeval/internal/history"
	"github.com/pydevkit/frameeval/internal/log"
	"github.com/pydevkit/frameeval/internal/pluginhost"
	"github.com/pydevkit/frameeval/internal/provider"
	"github.com/pydevkit/frameeval/internal/resolver"
	"github.com/pydevkit/frameeval/internal/ui"
)

var resolveNoRecord bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the accelerator for this machine",
	Long: `Runs one resolution pass against the registered providers and the
module files under the configured search directories, and reports which
provider would bind. The attempt is recorded in the resolution history
unless --no-record is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Disabled {
			ui.Warnf("accelerator disabled by configuration")
			return fmt.Errorf("accelerator disabled")
		}

		r := resolver.New(cfg.Python,
			provider.RegistrySource(),
			pluginhost.New(cfg.SearchDirs),
		)

		if !resolveNoRecord {
			store, err := history.Open(config.HistoryPath())
			if err != nil {
				// History is diagnostics; resolution proceeds without it.
				log.Warn("resolution history unavailable", "error", err)
			} else {
				defer store.Close()
				r.Recorder = store
			}
		}

		res, err := r.Resolve(cmd.Context())
		if err != nil {
			fmt.Printf("%s accelerator unavailable\n", ui.FailTag())
			return err
		}

		fmt.Printf("%s bound %s (key %s)\n", ui.OKTag(), ui.Bold(res.Provider), res.Key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveNoRecord, "no-record", false, "do not record the attempt in history")
}
