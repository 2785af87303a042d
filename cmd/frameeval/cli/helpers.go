package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pydevkit/frameeval/internal/config"
	"github.com/pydevkit/frameeval/internal/platform"
)

// parsePyVersion parses "3.9" into (3, 9).
func parsePyVersion(s string) (major, minor int, err error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("version %q: want major.minor", s)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("version %q: bad major", s)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("version %q: bad minor", s)
	}
	return major, minor, nil
}

// descriptorFromFlags builds a platform descriptor from flags, probing
// the configured interpreter for anything not supplied.
func descriptorFromFlags(ctx context.Context, cfg *config.Config, osFlag, pyVersion string, bits int) (platform.Descriptor, error) {
	if pyVersion != "" && bits != 0 {
		major, minor, err := parsePyVersion(pyVersion)
		if err != nil {
			return platform.Descriptor{}, err
		}
		if bits != 32 && bits != 64 {
			return platform.Descriptor{}, fmt.Errorf("bits must be 32 or 64, got %d", bits)
		}
		osID := osFlag
		if osID == "" {
			osID = platform.HostOS()
		}
		return platform.Descriptor{OS: osID, Major: major, Minor: minor, PointerBits: bits}, nil
	}

	desc, err := platform.NewProbe(cfg.Python).Descriptor(ctx)
	if err != nil {
		return platform.Descriptor{}, err
	}
	if osFlag != "" {
		desc.OS = osFlag
	}
	if pyVersion != "" {
		if desc.Major, desc.Minor, err = parsePyVersion(pyVersion); err != nil {
			return platform.Descriptor{}, err
		}
	}
	if bits != 0 {
		desc.PointerBits = bits
	}
	return desc, nil
}
