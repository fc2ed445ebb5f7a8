package testutil

import (
	"strings"
	"testing"
)

func TestGridText_RowMajor(t *testing.T) {
	got := GridText(2, 2, 1, func(x, y float64) float64 { return x }, Zero)
	want := Header + "\n0 0 0 0\n1 0 1 0\n0 1 0 0\n1 1 1 0\n"
	if got != want {
		t.Errorf("GridText() = %q, want %q", got, want)
	}
}

func TestGridText_RowCount(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(GridText(4, 3, 0.5, Zero, Zero)), "\n")
	if len(lines) != 1+12 {
		t.Errorf("got %d lines, want 13", len(lines))
	}
	if lines[12] != "1.5 1 0 0" {
		t.Errorf("last row = %q", lines[12])
	}
}
