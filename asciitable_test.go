package ocrpdf

import (
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestBuildASCIITable(t *testing.T) {
	rows := [][]string{
		{"Name", "Qty"},
		{"paperclips", "1200"},
	}
	lines := BuildASCIITable(rows)
	// border, row, border, row, border
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5: %v", len(lines), lines)
	}

	width := ansi.PrintableRuneWidth(lines[0])
	for i, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w != width {
			t.Errorf("line %d width = %d, want %d: %q", i, w, width, line)
		}
	}
	if lines[0][0] != '+' || lines[1][0] != '|' {
		t.Errorf("unexpected border characters: %q / %q", lines[0], lines[1])
	}
}

func TestBuildASCIITableUnevenRows(t *testing.T) {
	rows := [][]string{
		{"A", "B", "C"},
		{"only"},
	}
	lines := BuildASCIITable(rows)
	width := ansi.PrintableRuneWidth(lines[0])
	for _, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w != width {
			t.Fatalf("ragged output: %q", line)
		}
	}
}

func TestBuildASCIITableEmpty(t *testing.T) {
	if lines := BuildASCIITable(nil); lines != nil {
		t.Fatalf("lines = %v, want nil", lines)
	}
	if lines := BuildASCIITable([][]string{{}}); lines != nil {
		t.Fatalf("lines = %v, want nil", lines)
	}
}
