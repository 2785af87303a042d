package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when no provider matches any tried name.
	ErrUnavailable = errors.New("accelerator provider unavailable")

	// ErrIncomplete is returned when a provider was found but could not
	// supply both capability handles.
	ErrIncomplete = errors.New("provider supplied an incomplete capability pair")
)

// BindError wraps a failure to obtain capabilities from a provider that
// was found, with actionable guidance where we have any.
type BindError struct {
	Provider string
	Cause    error
	Hint     string
}

func (e *BindError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("bind %s: %v\n\n%s", e.Provider, e.Cause, e.Hint)
	}
	return fmt.Sprintf("bind %s: %v", e.Provider, e.Cause)
}

func (e *BindError) Unwrap() error {
	return e.Cause
}
