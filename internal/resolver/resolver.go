// Package resolver implements accelerator resolution: one pass at load
// time that binds the frame-evaluation capability pair from the first
// provider matching either the default name or the platform-qualified
// fallback name.
package resolver

import (
	"context"

	"github.com/pydevkit/frameeval/internal/platform"
	"github.com/pydevkit/frameeval/internal/provider"
)

// Outcome classifies a resolution attempt for recording.
type Outcome string

const (
	OutcomeBound       Outcome = "bound"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeProbeFailed Outcome = "probe-failed"
)

// Attempt is the record of one Resolve call.
type Attempt struct {
	Requested []string
	Outcome   Outcome
	Provider  string
	Err       error
}

// Recorder receives the outcome of each Resolve call. The resolver
// itself performs no I/O; persisting attempts is the caller's business.
type Recorder interface {
	Record(a Attempt)
}

// DescriptorFunc supplies the platform descriptor for the fallback name.
// It is invoked only when the default provider is absent; an error from
// it aborts resolution with no qualified-name attempt.
type DescriptorFunc func(ctx context.Context) (platform.Descriptor, error)

// Result is a successful resolution.
type Result struct {
	// Provider is the name the capabilities were bound from.
	Provider string

	// Key is the lookup key that matched: the bare default name, or the
	// package-qualified key on the fallback path.
	Key string

	Capabilities provider.Capabilities
}

// Resolver runs the two-stage resolution over an ordered list of
// provider sources.
type Resolver struct {
	Sources  []provider.Source
	Describe DescriptorFunc

	// Recorder is optional.
	Recorder Recorder
}

// New returns a Resolver over the given sources, using a probe of the
// named interpreter for the fallback descriptor.
func New(python string, sources ...provider.Source) *Resolver {
	probe := platform.NewProbe(python)
	return &Resolver{
		Sources:  sources,
		Describe: probe.Descriptor,
	}
}

// Resolve binds the capability pair. Both handles come back together or
// the error explains why neither is available; no partial binding can be
// observed.
func (r *Resolver) Resolve(ctx context.Context) (Result, error) {
	res, err := r.resolve(ctx)
	if r.Recorder != nil {
		r.Recorder.Record(attemptFor(res, err))
	}
	return res, err
}

func (r *Resolver) resolve(ctx context.Context) (Result, error) {
	requested := []string{platform.ProviderPrefix}

	// Primary path: the default provider name.
	var defaultErr error
	if p, ok := r.lookup(platform.ProviderPrefix); ok {
		caps, err := p.Capabilities()
		if err == nil {
			return Result{Provider: p.Name(), Key: platform.ProviderPrefix, Capabilities: caps}, nil
		}
		// A present-but-unbindable default falls through to the
		// qualified name, same as an absent one.
		defaultErr = err
	}

	// Fallback path: the platform-qualified name. If the descriptor
	// itself cannot be determined there is nothing to fall back to.
	desc, err := r.Describe(ctx)
	if err != nil {
		return Result{}, &UnavailableError{Requested: requested, Cause: err, ProbeFailed: true}
	}

	key := desc.QualifiedKey()
	requested = append(requested, key)
	if p, ok := r.lookup(desc.ProviderName()); ok {
		caps, err := p.Capabilities()
		if err != nil {
			return Result{}, err
		}
		return Result{Provider: p.Name(), Key: key, Capabilities: caps}, nil
	}

	return Result{}, &UnavailableError{Requested: requested, Cause: defaultErr}
}

func (r *Resolver) lookup(name string) (provider.Provider, bool) {
	for _, src := range r.Sources {
		if p, ok := src.Lookup(name); ok {
			return p, true
		}
	}
	return nil, false
}

func attemptFor(res Result, err error) Attempt {
	if err == nil {
		requested := []string{platform.ProviderPrefix}
		if res.Key != platform.ProviderPrefix {
			requested = append(requested, res.Key)
		}
		return Attempt{Requested: requested, Outcome: OutcomeBound, Provider: res.Provider}
	}

	a := Attempt{Outcome: OutcomeUnavailable, Err: err}
	if ue, ok := err.(*UnavailableError); ok {
		a.Requested = ue.Requested
		if ue.ProbeFailed {
			a.Outcome = OutcomeProbeFailed
		}
	}
	return a
}
