package ocrpdf

import "testing"

func TestParseBlocks(t *testing.T) {
	input := `---IMAGE_INDEX:0---
<|det|>[[100,200,500,260]]<|/det|>
First block line one
line two

<|det|>[[120,300,520,340]]<|/det|>
Second block

---PAGE_BREAK---

---IMAGE_INDEX:1---
<|det|>[[80,90,400,130]]<|/det|>
Third block
`
	blocks := ParseBlocks(input)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	first := blocks[0]
	if first.Text != "First block line one line two" {
		t.Errorf("first text = %q", first.Text)
	}
	if first.X != 100 || first.Y != 200 || first.Width != 400 || first.Height != 60 {
		t.Errorf("first geometry = %+v", first)
	}
	if first.ImageIndex != 0 || first.ForcePageBreak {
		t.Errorf("first flags = %+v", first)
	}

	third := blocks[2]
	if third.ImageIndex != 1 {
		t.Errorf("third image index = %d, want 1", third.ImageIndex)
	}
	if !third.ForcePageBreak {
		t.Errorf("third block lost the page break flag")
	}

	for _, b := range blocks {
		if b.Text == pageBreakLine || parseIsSentinel(b.Text) {
			t.Errorf("sentinel leaked into block text: %q", b.Text)
		}
	}
}

func parseIsSentinel(s string) bool {
	_, ok := parseImageIndexLine(s)
	return ok
}

func TestParseBlocksMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no text after det", "<|det|>[[1,2,3,4]]<|/det|>\n\nnext paragraph"},
		{"bad payload", "<|det|>[[1,2,3]]<|/det|>\ntext"},
		{"not numeric", "<|det|>[[a,b,c,d]]<|/det|>\ntext"},
		{"unclosed", "<|det|>[[1,2,3,4]\ntext"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		if blocks := ParseBlocks(tt.input); len(blocks) != 0 {
			t.Errorf("%s: got %d blocks, want 0", tt.name, len(blocks))
		}
	}
}

func TestParseBlocksForcedBreakAppliesToNextBlockOnly(t *testing.T) {
	input := `---PAGE_BREAK---
<|det|>[[1,2,30,40]]<|/det|>
first

<|det|>[[1,50,30,90]]<|/det|>
second
`
	blocks := ParseBlocks(input)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if !blocks[0].ForcePageBreak {
		t.Errorf("first block missing break flag")
	}
	if blocks[1].ForcePageBreak {
		t.Errorf("break flag carried past the first block")
	}
}

func TestParseImageIndexLine(t *testing.T) {
	tests := []struct {
		line string
		idx  int
		ok   bool
	}{
		{"---IMAGE_INDEX:0---", 0, true},
		{"---IMAGE_INDEX:12---", 12, true},
		{"---IMAGE_INDEX:-1---", 0, false},
		{"---IMAGE_INDEX:x---", 0, false},
		{"---PAGE_BREAK---", 0, false},
		{"plain text", 0, false},
	}
	for _, tt := range tests {
		idx, ok := parseImageIndexLine(tt.line)
		if idx != tt.idx || ok != tt.ok {
			t.Errorf("parseImageIndexLine(%q) = (%d, %v), want (%d, %v)", tt.line, idx, ok, tt.idx, tt.ok)
		}
	}
}

func TestParseBoundingBox(t *testing.T) {
	box, ok := parseBoundingBox("[[1.5, 2, 3.25, 4]]")
	if !ok {
		t.Fatalf("expected valid box")
	}
	if box != [4]float64{1.5, 2, 3.25, 4} {
		t.Fatalf("box = %v", box)
	}

	for _, bad := range []string{"[1,2,3,4]", "[[1,2,3]]", "[[1,2,3,4,5]]", "[[1,2,3,x]]", ""} {
		if _, ok := parseBoundingBox(bad); ok {
			t.Errorf("parseBoundingBox(%q) unexpectedly ok", bad)
		}
	}
}
