package pdf

import "testing"

func TestBorderedTableEmptyRows(t *testing.T) {
	doc := newDocument(DefaultConfig())
	y := renderBorderedTable(doc, nil, 5, 50, 200, 8)
	if y != 50 {
		t.Fatalf("y = %v, want unchanged 50 for zero rows", y)
	}
}

func TestBorderedTableAdvancesCursor(t *testing.T) {
	doc := newDocument(DefaultConfig())
	rows := [][]string{{"Name", "Value"}, {"alpha", "1"}}
	y := renderBorderedTable(doc, rows, 5, 50, 200, 8)
	if y <= 50 {
		t.Fatalf("y = %v, want cursor below start", y)
	}
}

func TestBorderedTableUnevenRows(t *testing.T) {
	// A row with fewer cells than the widest row must not panic and
	// must still advance the cursor.
	doc := newDocument(DefaultConfig())
	rows := [][]string{{"A", "B", "C"}, {"only one"}}
	y := renderBorderedTable(doc, rows, 5, 50, 200, 8)
	if y <= 50 {
		t.Fatalf("y = %v, want cursor below start", y)
	}
	if err := doc.pdf.Error(); err != nil {
		t.Fatalf("document error: %v", err)
	}
}

func TestASCIITableStyleDispatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TableStyle = TableASCII
	doc := newDocument(cfg)
	rows := [][]string{{"A", "B"}}
	y := renderTable(doc, cfg, rows, 5, 50, 200, 8)
	// One row renders as three monospace lines plus padding.
	want := 50 + 3*asciiTableStep + asciiTablePadding
	if y != want {
		t.Fatalf("y = %v, want %v", y, want)
	}
}
