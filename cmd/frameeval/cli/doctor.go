package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pydevkit/frameeval/internal/config"
	"github.com/pydevkit/frameeval/internal/doctor"
	"github.com/pydevkit/frameeval/internal/history"
	"github.com/pydevkit/frameeval/internal/pluginhost"
	"github.com/pydevkit/frameeval/internal/platform"
	"github.com/pydevkit/frameeval/internal/provider"
	"github.com/pydevkit/frameeval/internal/resolver"
	"github.com/pydevkit/frameeval/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnostic information about the accelerator environment",
	Long: `Displays diagnostic information for debugging accelerator resolution:
version, host platform, interpreter probe, search directories, known
providers, and recent resolution attempts.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(ui.Bold("frameeval doctor"))
	fmt.Println()

	reg := doctor.NewRegistry()
	reg.Register(&versionSection{})
	reg.Register(&platformSection{})
	reg.Register(&interpreterSection{cfg: cfg})
	reg.Register(&searchDirsSection{cfg: cfg})
	reg.Register(&providersSection{cfg: cfg})
	reg.Register(&historySection{})

	for _, section := range reg.Sections() {
		ui.Section(section.Name())
		if err := section.Print(os.Stdout); err != nil {
			fmt.Printf("%s Error: %v\n", ui.FailTag(), err)
		}
		fmt.Println()
	}
	return nil
}

type versionSection struct{}

func (s *versionSection) Name() string { return "Version" }

func (s *versionSection) Print(w io.Writer) error {
	fmt.Fprintf(w, "frameeval %s (%s/%s, %s)\n", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	return nil
}

type platformSection struct{}

func (s *platformSection) Name() string { return "Platform" }

func (s *platformSection) Print(w io.Writer) error {
	fmt.Fprintf(w, "identifier: %s\n", platform.HostOS())
	fmt.Fprintf(w, "default provider name: %s\n", platform.ProviderPrefix)
	fmt.Fprintf(w, "module namespace: %s\n", platform.Namespace)
	return nil
}

type interpreterSection struct {
	cfg *config.Config
}

func (s *interpreterSection) Name() string { return "Interpreter" }

func (s *interpreterSection) Print(w io.Writer) error {
	fmt.Fprintf(w, "executable: %s\n", s.cfg.Python)

	desc, err := platform.NewProbe(s.cfg.Python).Descriptor(context.Background())
	if err != nil {
		fmt.Fprintf(w, "%s probe failed: %v\n", ui.FailTag(), err)
		fmt.Fprintf(w, "  without the probe there is no fallback name; only the default provider can bind\n")
		return nil
	}

	fmt.Fprintf(w, "%s %s\n", ui.OKTag(), desc)
	fmt.Fprintf(w, "fallback key: %s\n", desc.QualifiedKey())
	return nil
}

type searchDirsSection struct {
	cfg *config.Config
}

func (s *searchDirsSection) Name() string { return "Search directories" }

func (s *searchDirsSection) Print(w io.Writer) error {
	for _, dir := range s.cfg.SearchDirs {
		nsDir := filepath.Join(dir, platform.Namespace)
		if info, err := os.Stat(nsDir); err == nil && info.IsDir() {
			fmt.Fprintf(w, "%s %s\n", ui.OKTag(), nsDir)
		} else {
			fmt.Fprintf(w, "%s %s (missing)\n", ui.WarnTag(), nsDir)
		}
	}
	if s.cfg.Disabled {
		fmt.Fprintf(w, "%s accelerator disabled by configuration\n", ui.WarnTag())
	}
	return nil
}

type providersSection struct {
	cfg *config.Config
}

func (s *providersSection) Name() string { return "Providers" }

func (s *providersSection) Print(w io.Writer) error {
	registered := provider.Names()
	discovered := pluginhost.New(s.cfg.SearchDirs).Discover()

	if len(registered) == 0 && len(discovered) == 0 {
		fmt.Fprintf(w, "%s none found\n", ui.FailTag())
		return nil
	}
	for _, name := range registered {
		fmt.Fprintf(w, "%s %s (registry)\n", ui.OKTag(), name)
	}
	for _, name := range discovered {
		fmt.Fprintf(w, "%s %s (module file)\n", ui.OKTag(), name)
	}
	return nil
}

type historySection struct{}

func (s *historySection) Name() string { return "Recent attempts" }

func (s *historySection) Print(w io.Writer) error {
	store, err := history.Open(config.HistoryPath())
	if err != nil {
		fmt.Fprintf(w, "history unavailable: %v\n", err)
		return nil
	}
	defer store.Close()

	entries, err := store.Recent(5)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "none recorded")
		return nil
	}
	for _, e := range entries {
		tag := ui.OKTag()
		detail := e.Provider
		if e.Outcome != resolver.OutcomeBound {
			tag = ui.FailTag()
			detail = e.Error
		}
		fmt.Fprintf(w, "%s %s %s %s\n", tag, e.Timestamp.Local().Format("2006-01-02 15:04"), e.Outcome, detail)
	}
	return nil
}
