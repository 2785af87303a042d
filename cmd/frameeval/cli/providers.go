package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pydevkit/frameeval/internal/config"
	"github.com/pydevkit/frameeval/internal/pluginhost"
	"github.com/pydevkit/frameeval/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List known accelerator providers",
	Long: `Lists providers registered in-process and accelerator module files
found under the configured search directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintln(w, "NAME\tSOURCE")

		for _, name := range provider.Names() {
			fmt.Fprintf(w, "%s\tregistry\n", name)
		}
		for _, name := range pluginhost.New(cfg.SearchDirs).Discover() {
			fmt.Fprintf(w, "%s\tmodule file\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
