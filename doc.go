// Package frameeval resolves the frame-evaluation accelerator for the
// debugging toolkit and exposes its two capability handles.
//
// Resolution is a single pass: the default provider name is tried first,
// then a platform-qualified fallback name derived from the host OS,
// interpreter version, and pointer width. If neither matches, the error
// is surfaced to the caller; the toolkit decides its own degradation
// policy (typically running the unaccelerated tracer).
//
// Typical use at toolkit startup:
//
//	if err := frameeval.Init(ctx); err != nil {
//		// accelerated path unavailable, fall back
//	}
//	install := frameeval.FrameEvalFunc()
//	defer frameeval.StopFrameEval()()
//
// FrameEvalFunc and StopFrameEval are bound together once and never
// mutated afterward; after a nil Init they are safe for any number of
// concurrent readers.
package frameeval
