package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)
	SetColorEnabled(false)

	Warnf("no accelerator for %s", "linux")

	if got := buf.String(); got != "Warning: no accelerator for linux\n" {
		t.Errorf("Warnf output = %q", got)
	}
}

func TestColorDisabled(t *testing.T) {
	SetColorEnabled(false)
	if got := Bold("x"); got != "x" {
		t.Errorf("Bold with color off = %q, want plain", got)
	}
	if got := OKTag(); got != "✓" {
		t.Errorf("OKTag with color off = %q", got)
	}
}

func TestColorEnabled(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	if got := Red("fail"); !strings.Contains(got, "\033[31m") {
		t.Errorf("Red with color on = %q, want ANSI codes", got)
	}
}
