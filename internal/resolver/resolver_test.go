package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydevkit/frameeval/internal/platform"
	"github.com/pydevkit/frameeval/internal/provider"
)

type fakeProvider struct {
	name    string
	bindErr error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Capabilities() (provider.Capabilities, error) {
	if f.bindErr != nil {
		return provider.Capabilities{}, f.bindErr
	}
	return provider.Capabilities{
		FrameEvalFunc: func() error { return nil },
		StopFrameEval: func() error { return nil },
	}, nil
}

// mapSource is a provider.Source over a fixed map, tracking lookups.
type mapSource struct {
	providers map[string]provider.Provider
	lookups   []string
}

func (s *mapSource) Lookup(name string) (provider.Provider, bool) {
	s.lookups = append(s.lookups, name)
	p, ok := s.providers[name]
	return p, ok
}

const qualifiedName = "pydevd_frame_evaluator_linux_39_64"

var linuxDesc = platform.Descriptor{OS: "linux", Major: 3, Minor: 9, PointerBits: 64}

func newResolver(src *mapSource, probeCalls *int, probeErr error) *Resolver {
	return &Resolver{
		Sources: []provider.Source{src},
		Describe: func(ctx context.Context) (platform.Descriptor, error) {
			if probeCalls != nil {
				*probeCalls++
			}
			if probeErr != nil {
				return platform.Descriptor{}, probeErr
			}
			return linuxDesc, nil
		},
	}
}

func TestResolveDefaultProvider(t *testing.T) {
	src := &mapSource{providers: map[string]provider.Provider{
		platform.ProviderPrefix: &fakeProvider{name: platform.ProviderPrefix},
	}}
	probeCalls := 0
	r := newResolver(src, &probeCalls, nil)

	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, platform.ProviderPrefix, res.Provider)
	assert.Equal(t, platform.ProviderPrefix, res.Key)
	assert.True(t, res.Capabilities.Complete())

	// The fallback machinery must not run when the default is present.
	assert.Zero(t, probeCalls, "probe ran despite default provider")
	assert.Equal(t, []string{platform.ProviderPrefix}, src.lookups)
}

func TestResolveFallback(t *testing.T) {
	src := &mapSource{providers: map[string]provider.Provider{
		qualifiedName: &fakeProvider{name: qualifiedName},
	}}
	r := newResolver(src, nil, nil)

	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, qualifiedName, res.Provider)
	assert.Equal(t, "_pydevd_frame_eval.pydevd_frame_evaluator_linux_39_64", res.Key)
	assert.True(t, res.Capabilities.Complete())
}

func TestResolveNeitherPresent(t *testing.T) {
	src := &mapSource{providers: map[string]provider.Provider{}}
	r := newResolver(src, nil, nil)

	res, err := r.Resolve(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
	assert.False(t, res.Capabilities.FrameEvalFunc != nil || res.Capabilities.StopFrameEval != nil,
		"partial binding observable after failure")

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, []string{
		platform.ProviderPrefix,
		"_pydevd_frame_eval.pydevd_frame_evaluator_linux_39_64",
	}, ue.Requested)
}

func TestResolveProbeFailure(t *testing.T) {
	src := &mapSource{providers: map[string]provider.Provider{
		// Present on disk, but unreachable without a descriptor.
		qualifiedName: &fakeProvider{name: qualifiedName},
	}}
	probeErr := &platform.ProbeError{Python: "python3", Cause: errors.New("exec: not found")}
	r := newResolver(src, nil, probeErr)

	_, err := r.Resolve(context.Background())
	require.Error(t, err)

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.True(t, ue.ProbeFailed)
	assert.ErrorIs(t, err, provider.ErrUnavailable)

	// No qualified name may be computed or tried after a probe failure.
	assert.Equal(t, []string{platform.ProviderPrefix}, ue.Requested)
	assert.Equal(t, []string{platform.ProviderPrefix}, src.lookups)
}

func TestResolveBrokenDefaultFallsThrough(t *testing.T) {
	bindErr := &provider.BindError{Provider: platform.ProviderPrefix, Cause: provider.ErrIncomplete}
	src := &mapSource{providers: map[string]provider.Provider{
		platform.ProviderPrefix: &fakeProvider{name: platform.ProviderPrefix, bindErr: bindErr},
		qualifiedName:           &fakeProvider{name: qualifiedName},
	}}
	r := newResolver(src, nil, nil)

	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, qualifiedName, res.Provider)
}

func TestResolveBrokenDefaultNoFallbackTarget(t *testing.T) {
	bindErr := &provider.BindError{Provider: platform.ProviderPrefix, Cause: provider.ErrIncomplete}
	src := &mapSource{providers: map[string]provider.Provider{
		platform.ProviderPrefix: &fakeProvider{name: platform.ProviderPrefix, bindErr: bindErr},
	}}
	r := newResolver(src, nil, nil)

	_, err := r.Resolve(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
	assert.ErrorIs(t, err, provider.ErrIncomplete, "bind failure on the default should surface as the cause")
}

func TestResolveBrokenQualifiedIsFatal(t *testing.T) {
	bindErr := &provider.BindError{Provider: qualifiedName, Cause: errors.New("invalid ELF header")}
	src := &mapSource{providers: map[string]provider.Provider{
		qualifiedName: &fakeProvider{name: qualifiedName, bindErr: bindErr},
	}}
	r := newResolver(src, nil, nil)

	_, err := r.Resolve(context.Background())
	var be *provider.BindError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, qualifiedName, be.Provider)
}

func TestSourceOrder(t *testing.T) {
	reg := &mapSource{providers: map[string]provider.Provider{
		platform.ProviderPrefix: &fakeProvider{name: "from-registry"},
	}}
	plug := &mapSource{providers: map[string]provider.Provider{
		platform.ProviderPrefix: &fakeProvider{name: "from-plugins"},
	}}
	r := &Resolver{
		Sources: []provider.Source{reg, plug},
		Describe: func(context.Context) (platform.Descriptor, error) {
			return linuxDesc, nil
		},
	}

	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-registry", res.Provider)
	assert.Empty(t, plug.lookups, "later source consulted despite earlier hit")
}

type captureRecorder struct {
	attempts []Attempt
}

func (c *captureRecorder) Record(a Attempt) { c.attempts = append(c.attempts, a) }

func TestRecorder(t *testing.T) {
	t.Run("bound", func(t *testing.T) {
		rec := &captureRecorder{}
		src := &mapSource{providers: map[string]provider.Provider{
			platform.ProviderPrefix: &fakeProvider{name: platform.ProviderPrefix},
		}}
		r := newResolver(src, nil, nil)
		r.Recorder = rec

		_, err := r.Resolve(context.Background())
		require.NoError(t, err)
		require.Len(t, rec.attempts, 1)
		assert.Equal(t, OutcomeBound, rec.attempts[0].Outcome)
		assert.Equal(t, platform.ProviderPrefix, rec.attempts[0].Provider)
		assert.Equal(t, []string{platform.ProviderPrefix}, rec.attempts[0].Requested)
	})

	t.Run("probe failed", func(t *testing.T) {
		rec := &captureRecorder{}
		r := newResolver(&mapSource{providers: map[string]provider.Provider{}}, nil, errors.New("no interpreter"))
		r.Recorder = rec

		_, err := r.Resolve(context.Background())
		require.Error(t, err)
		require.Len(t, rec.attempts, 1)
		assert.Equal(t, OutcomeProbeFailed, rec.attempts[0].Outcome)
		assert.Error(t, rec.attempts[0].Err)
	})

	t.Run("unavailable", func(t *testing.T) {
		rec := &captureRecorder{}
		r := newResolver(&mapSource{providers: map[string]provider.Provider{}}, nil, nil)
		r.Recorder = rec

		_, err := r.Resolve(context.Background())
		require.Error(t, err)
		require.Len(t, rec.attempts, 1)
		assert.Equal(t, OutcomeUnavailable, rec.attempts[0].Outcome)
	})
}
