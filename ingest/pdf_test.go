package ingest

import "testing"

func TestContentStreamText(t *testing.T) {
	stream := "BT /F1 12 Tf 72 720 Td (Hello) Tj ( World) Tj 0 -14 Td (Next line) Tj ET"
	got := contentStreamText(stream)
	want := "\nHello World\nNext line\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestContentStreamTextTJArray(t *testing.T) {
	stream := "BT [(Kerned) -20 ( pair)] TJ ET"
	got := contentStreamText(stream)
	if got != "Kerned pair\n" {
		t.Fatalf("got %q", got)
	}
}

func TestParseLiteralString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(simple)", "simple"},
		{"(with (nested) parens)", "with (nested) parens"},
		{`(escaped \) paren)`, "escaped ) paren"},
		{`(line\nbreak)`, "line\nbreak"},
	}
	for _, tt := range tests {
		got, _ := parseLiteralString(tt.in, 0)
		if got != tt.want {
			t.Errorf("parseLiteralString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
