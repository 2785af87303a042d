package platform

import (
	"context"
	"errors"
	"testing"
)

func stubProbe(out string, err error) *Probe {
	return &Probe{
		Python: "python3",
		run: func(context.Context, string) ([]byte, error) {
			if err != nil {
				return nil, err
			}
			return []byte(out), nil
		},
	}
}

func TestProbeDescriptor(t *testing.T) {
	t.Run("64-bit interpreter", func(t *testing.T) {
		p := stubProbe("3 9 1\n", nil)
		d, err := p.Descriptor(context.Background())
		if err != nil {
			t.Fatalf("Descriptor() error = %v", err)
		}
		if d.Major != 3 || d.Minor != 9 || d.PointerBits != 64 {
			t.Errorf("Descriptor() = %+v, want 3.9 64-bit", d)
		}
		if d.OS != HostOS() {
			t.Errorf("Descriptor().OS = %q, want host identifier %q", d.OS, HostOS())
		}
	})

	t.Run("32-bit interpreter", func(t *testing.T) {
		p := stubProbe("3 11 0\n", nil)
		d, err := p.Descriptor(context.Background())
		if err != nil {
			t.Fatalf("Descriptor() error = %v", err)
		}
		if d.PointerBits != 32 {
			t.Errorf("PointerBits = %d, want 32", d.PointerBits)
		}
	})

	t.Run("interpreter missing", func(t *testing.T) {
		probeErr := errors.New("exec: not found")
		p := stubProbe("", probeErr)
		_, err := p.Descriptor(context.Background())

		var pe *ProbeError
		if !errors.As(err, &pe) {
			t.Fatalf("Descriptor() error = %v, want *ProbeError", err)
		}
		if !errors.Is(err, probeErr) {
			t.Errorf("ProbeError does not wrap the exec failure: %v", err)
		}
	})

	t.Run("garbled output", func(t *testing.T) {
		for _, out := range []string{"", "3 9", "three nine one", "3 9 2"} {
			p := stubProbe(out, nil)
			if _, err := p.Descriptor(context.Background()); err == nil {
				t.Errorf("Descriptor() with output %q: expected error", out)
			}
		}
	})
}
