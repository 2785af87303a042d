package provider

// FrameEvalFunc installs the frame-evaluation hook in the target
// interpreter session. Its semantics are opaque to the resolver.
type FrameEvalFunc func() error

// StopFrameEvalFunc uninstalls the hook installed by FrameEvalFunc.
type StopFrameEvalFunc func() error

// Capabilities is the pair of handles a provider supplies. A provider
// either yields both or fails; there is no partial pair.
type Capabilities struct {
	FrameEvalFunc FrameEvalFunc
	StopFrameEval StopFrameEvalFunc
}

// Complete reports whether both handles are present.
func (c Capabilities) Complete() bool {
	return c.FrameEvalFunc != nil && c.StopFrameEval != nil
}

// Provider is implemented by all accelerator providers.
type Provider interface {
	// Name returns the provider identifier, e.g. "pydevd_frame_evaluator"
	// or "pydevd_frame_evaluator_linux_39_64".
	Name() string

	// Capabilities yields both handles, or an error if the provider
	// cannot supply the complete pair.
	Capabilities() (Capabilities, error)
}

// Source yields providers by name. The registry is one source; the
// plugin host is another.
type Source interface {
	// Lookup returns the provider registered or discoverable under name.
	// The second return is false on a miss; errors other than "not
	// found" (e.g. a module missing a symbol) come from Capabilities.
	Lookup(name string) (Provider, bool)
}
