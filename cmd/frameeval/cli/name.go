package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydevkit/frameeval/internal/config"
)

var (
	nameOS        string
	namePyVersion string
	nameBits      int
	nameBare      bool
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Print the platform-qualified accelerator lookup key",
	Long: `Prints the package-qualified lookup key the resolver would fall back
to on this machine, e.g.

  _pydevd_frame_eval.pydevd_frame_evaluator_linux_39_64

Interpreter version and pointer width are probed from the configured
Python unless supplied with --python-version and --bits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		desc, err := descriptorFromFlags(cmd.Context(), cfg, nameOS, namePyVersion, nameBits)
		if err != nil {
			return err
		}

		if nameBare {
			fmt.Println(desc.ProviderName())
			return nil
		}
		fmt.Println(desc.QualifiedKey())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
	nameCmd.Flags().StringVar(&nameOS, "platform", "", "platform identifier (default: host)")
	nameCmd.Flags().StringVar(&namePyVersion, "python-version", "", "interpreter version, e.g. 3.9 (default: probe)")
	nameCmd.Flags().IntVar(&nameBits, "bits", 0, "pointer width, 32 or 64 (default: probe)")
	nameCmd.Flags().BoolVar(&nameBare, "bare", false, "print the provider name without the package prefix")
}
