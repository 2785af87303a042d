package resolver

import (
	"fmt"
	"strings"

	"github.com/pydevkit/frameeval/internal/provider"
)

// UnavailableError reports that no provider matched any tried name. It
// satisfies errors.Is(err, provider.ErrUnavailable).
type UnavailableError struct {
	// Requested lists the lookup keys tried, in order.
	Requested []string

	// Cause, when set, is the bind failure from a default provider that
	// was present but unusable, or the probe failure.
	Cause error

	// ProbeFailed marks the case where the platform descriptor could
	// not be determined, so no qualified name was ever computed.
	ProbeFailed bool
}

func (e *UnavailableError) Error() string {
	tried := strings.Join(e.Requested, ", ")
	switch {
	case e.ProbeFailed:
		return fmt.Sprintf("accelerator unavailable: %v (tried %s; platform probe failed)", e.Cause, tried)
	case e.Cause != nil:
		return fmt.Sprintf("accelerator unavailable: %v (tried %s)", e.Cause, tried)
	default:
		return fmt.Sprintf("accelerator unavailable (tried %s)", tried)
	}
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Is reports provider.ErrUnavailable as a match so callers can test for
// the single error kind resolution produces.
func (e *UnavailableError) Is(target error) bool {
	return target == provider.ErrUnavailable
}
