package frameeval

import (
	"context"
	"sync"

	"github.com/pydevkit/frameeval/internal/config"
	"github.com/pydevkit/frameeval/internal/pluginhost"
	"github.com/pydevkit/frameeval/internal/provider"
	"github.com/pydevkit/frameeval/internal/resolver"
)

// Re-exported capability types. Both handles bind together or not at
// all; a partial pair is not representable.
type (
	Capabilities = provider.Capabilities
	InstallFunc  = provider.FrameEvalFunc
	StopFunc     = provider.StopFrameEvalFunc
)

// ErrUnavailable reports that no accelerator provider matched any tried
// name, or that the platform could not be probed at all.
var ErrUnavailable = provider.ErrUnavailable

// newResolver builds the production resolver; swapped in tests.
var newResolver = func() (*resolver.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Disabled {
		return nil, &resolver.UnavailableError{
			Requested: nil,
			Cause:     errDisabled,
		}
	}
	return resolver.New(cfg.Python,
		provider.RegistrySource(),
		pluginhost.New(cfg.SearchDirs),
	), nil
}

var errDisabled = disabledError{}

type disabledError struct{}

func (disabledError) Error() string { return "accelerator disabled by configuration" }

func (disabledError) Is(target error) bool { return target == provider.ErrUnavailable }

var (
	once  sync.Once
	bound Capabilities
	fail  error
)

// Init resolves the accelerator exactly once for the process. Every call
// after the first returns the first call's result. On a nil return both
// handles are bound; on error neither is.
func Init(ctx context.Context) error {
	once.Do(func() {
		r, err := newResolver()
		if err != nil {
			fail = err
			return
		}
		res, err := r.Resolve(ctx)
		if err != nil {
			fail = err
			return
		}
		bound = res.Capabilities
	})
	return fail
}

// FrameEvalFunc returns the bound hook-install handle. It is nil unless
// Init has returned nil.
func FrameEvalFunc() InstallFunc {
	return bound.FrameEvalFunc
}

// StopFrameEval returns the bound hook-uninstall handle. It is nil
// unless Init has returned nil.
func StopFrameEval() StopFunc {
	return bound.StopFrameEval
}

// reset clears the process-wide binding. For testing only.
func reset() {
	once = sync.Once{}
	bound = Capabilities{}
	fail = nil
}
