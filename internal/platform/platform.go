// Package platform describes the host tuple the accelerator naming
// contract is keyed on: OS identifier, interpreter major/minor version,
// and pointer width.
//
// The on-disk naming contract is inherited from the pydevd accelerator
// distributions and must stay bit-exact so existing pre-compiled modules
// keep loading: the default provider is named ProviderPrefix, and the
// platform-qualified fallback is <prefix>_<os>_<major><minor>_<bits>
// underneath the Namespace directory.
package platform

import (
	"fmt"
	"runtime"
)

const (
	// ProviderPrefix is the fixed leading literal of every provider name.
	ProviderPrefix = "pydevd_frame_evaluator"

	// Namespace is the package directory accelerator modules live under.
	Namespace = "_pydevd_frame_eval"
)

// Descriptor identifies a concrete accelerator target.
type Descriptor struct {
	// OS is the platform identifier in interpreter convention
	// ("linux", "win32", "darwin"), not GOOS.
	OS string

	// Major and Minor are the interpreter version digits.
	Major int
	Minor int

	// PointerBits is 32 or 64.
	PointerBits int
}

// ProviderName returns the platform-qualified provider name, e.g.
// "pydevd_frame_evaluator_linux_39_64".
func (d Descriptor) ProviderName() string {
	return fmt.Sprintf("%s_%s_%d%d_%d", ProviderPrefix, d.OS, d.Major, d.Minor, d.PointerBits)
}

// QualifiedKey returns the package-qualified lookup key, e.g.
// "_pydevd_frame_eval.pydevd_frame_evaluator_linux_39_64".
func (d Descriptor) QualifiedKey() string {
	return Namespace + "." + d.ProviderName()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s py%d.%d %d-bit", d.OS, d.Major, d.Minor, d.PointerBits)
}

// HostOS maps the current GOOS to the interpreter platform identifier.
func HostOS() string {
	return osIdentifier(runtime.GOOS)
}

func osIdentifier(goos string) string {
	switch goos {
	case "windows":
		return "win32"
	default:
		// linux, darwin and the BSDs already match sys.platform.
		return goos
	}
}
