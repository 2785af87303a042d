package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// probeScript asks the interpreter for its version digits and whether it
// is a 64-bit build. The bitness question is the same one the accelerator
// wrapper has always asked: sys.maxsize > 2**32.
const probeScript = `import sys
print("%d %d %d" % (sys.version_info[0], sys.version_info[1], int(sys.maxsize > 2**32)))`

// ProbeError reports that the interpreter could not be queried at all.
// Resolution treats this as fatal: without the bitness answer there is no
// qualified name to fall back to.
type ProbeError struct {
	Python string
	Cause  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probing interpreter %q: %v", e.Python, e.Cause)
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

// Probe queries a Python interpreter for the platform descriptor fields
// that cannot be read from the Go runtime.
type Probe struct {
	// Python is the interpreter executable to query.
	Python string

	// run allows tests to stub the subprocess call.
	run func(ctx context.Context, python string) ([]byte, error)
}

// NewProbe returns a Probe for the given interpreter executable.
func NewProbe(python string) *Probe {
	return &Probe{Python: python, run: runInterpreter}
}

func runInterpreter(ctx context.Context, python string) ([]byte, error) {
	return exec.CommandContext(ctx, python, "-c", probeScript).Output()
}

// Descriptor runs the probe and combines the answer with the host OS
// identifier. Any failure, including an interpreter that cannot answer
// the bitness question, comes back as a *ProbeError.
func (p *Probe) Descriptor(ctx context.Context) (Descriptor, error) {
	out, err := p.run(ctx, p.Python)
	if err != nil {
		return Descriptor{}, &ProbeError{Python: p.Python, Cause: err}
	}

	major, minor, bits, err := parseProbeOutput(string(out))
	if err != nil {
		return Descriptor{}, &ProbeError{Python: p.Python, Cause: err}
	}

	return Descriptor{
		OS:          HostOS(),
		Major:       major,
		Minor:       minor,
		PointerBits: bits,
	}, nil
}

func parseProbeOutput(out string) (major, minor, bits int, err error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("unexpected probe output %q", strings.TrimSpace(out))
	}

	major, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad major version %q", fields[0])
	}
	minor, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad minor version %q", fields[1])
	}

	switch fields[2] {
	case "1":
		bits = 64
	case "0":
		bits = 32
	default:
		return 0, 0, 0, fmt.Errorf("bad bitness answer %q", fields[2])
	}
	return major, minor, bits, nil
}
