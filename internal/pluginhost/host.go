// Package pluginhost surfaces accelerator modules shipped as loadable
// plugin files. A provider named N is expected at
// <searchdir>/_pydevd_frame_eval/N.so; the module must export both
// FrameEvalFunc and StopFrameEval as func() error.
package pluginhost

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"sort"
	"strings"

	"github.com/pydevkit/frameeval/internal/platform"
	"github.com/pydevkit/frameeval/internal/provider"
)

const moduleExt = ".so"

// Exported symbol names every accelerator module must carry.
const (
	symFrameEval = "FrameEvalFunc"
	symStopEval  = "StopFrameEval"
)

// symbolSource is the slice of *plugin.Plugin the host needs; stubbed in
// tests since plugin.Open requires a built module.
type symbolSource interface {
	Lookup(name string) (plugin.Symbol, error)
}

// Host looks up accelerator modules across an ordered list of search
// directories.
type Host struct {
	searchDirs []string
	open       func(path string) (symbolSource, error)
}

// New returns a Host over the given search directories, consulted in
// order.
func New(searchDirs []string) *Host {
	return &Host{
		searchDirs: searchDirs,
		open: func(path string) (symbolSource, error) {
			return plugin.Open(path)
		},
	}
}

// Lookup implements provider.Source. A hit means the module file exists;
// loading and symbol binding are deferred to Capabilities so that a
// broken module reports a bind failure rather than a silent miss.
func (h *Host) Lookup(name string) (provider.Provider, bool) {
	for _, dir := range h.searchDirs {
		path := filepath.Join(dir, platform.Namespace, name+moduleExt)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return &pluginProvider{name: name, path: path, open: h.open}, true
		}
	}
	return nil, false
}

// Discover returns the provider names of all module files present under
// the search directories, sorted and de-duplicated.
func (h *Host) Discover() []string {
	seen := make(map[string]bool)
	for _, dir := range h.searchDirs {
		entries, err := os.ReadDir(filepath.Join(dir, platform.Namespace))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), moduleExt) {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), moduleExt)] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pluginProvider binds capabilities out of a module file on demand.
type pluginProvider struct {
	name string
	path string
	open func(path string) (symbolSource, error)
}

func (p *pluginProvider) Name() string { return p.name }

func (p *pluginProvider) Path() string { return p.path }

func (p *pluginProvider) Capabilities() (provider.Capabilities, error) {
	mod, err := p.open(p.path)
	if err != nil {
		return provider.Capabilities{}, &provider.BindError{
			Provider: p.name,
			Cause:    err,
			Hint:     "the module may have been built against a different toolkit version",
		}
	}

	install, err := lookupFunc(mod, symFrameEval)
	if err != nil {
		return provider.Capabilities{}, incomplete(p.name, err)
	}
	stop, err := lookupFunc(mod, symStopEval)
	if err != nil {
		return provider.Capabilities{}, incomplete(p.name, err)
	}

	return provider.Capabilities{
		FrameEvalFunc: install,
		StopFrameEval: stop,
	}, nil
}

func lookupFunc(mod symbolSource, name string) (func() error, error) {
	sym, err := mod.Lookup(name)
	if err != nil {
		return nil, err
	}
	fn, ok := sym.(func() error)
	if !ok {
		return nil, fmt.Errorf("symbol %s has type %T, want func() error", name, sym)
	}
	return fn, nil
}

func incomplete(name string, cause error) error {
	return &provider.BindError{
		Provider: name,
		Cause:    fmt.Errorf("%w: %v", provider.ErrIncomplete, cause),
	}
}
