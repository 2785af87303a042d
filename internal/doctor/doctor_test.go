package doctor

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

type stubSection struct {
	name string
}

func (s *stubSection) Name() string { return s.name }

func (s *stubSection) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "section %s\n", s.name)
	return err
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubSection{name: "Platform"})
	r.Register(&stubSection{name: "Providers"})

	sections := r.Sections()
	if len(sections) != 2 {
		t.Fatalf("Sections() returned %d, want 2", len(sections))
	}
	if sections[0].Name() != "Platform" || sections[1].Name() != "Providers" {
		t.Error("sections not returned in registration order")
	}

	var buf bytes.Buffer
	for _, s := range sections {
		if err := s.Print(&buf); err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != "section Platform\nsection Providers\n" {
		t.Errorf("output = %q", buf.String())
	}
}
