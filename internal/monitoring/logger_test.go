package monitoring

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLogWriters_RoutesStreams(t *testing.T) {
	defer SetLogWriters(LogWriters{Ops: os.Stderr})

	var ops, diag, trace bytes.Buffer
	SetLogWriters(LogWriters{Ops: &ops, Diag: &diag, Trace: &trace})

	Opsf("created %s", "a.npy")
	Diagf("xdim=%d", 4)
	Tracef("row %d", 7)

	if !strings.Contains(ops.String(), "created a.npy") {
		t.Errorf("ops stream = %q, want created message", ops.String())
	}
	if !strings.Contains(diag.String(), "xdim=4") {
		t.Errorf("diag stream = %q, want xdim message", diag.String())
	}
	if !strings.Contains(trace.String(), "row 7") {
		t.Errorf("trace stream = %q, want row message", trace.String())
	}
	if !strings.HasPrefix(ops.String(), "[strainmap] ") {
		t.Errorf("ops stream missing prefix: %q", ops.String())
	}
}

func TestSetLogWriters_NilMutes(t *testing.T) {
	defer SetLogWriters(LogWriters{Ops: os.Stderr})

	var diag bytes.Buffer
	SetLogWriters(LogWriters{Diag: &diag})

	// Must not panic with muted streams.
	Opsf("muted")
	Tracef("muted")
	Diagf("kept")

	if got := diag.String(); !strings.Contains(got, "kept") || strings.Contains(got, "muted") {
		t.Errorf("diag stream = %q", got)
	}
}
