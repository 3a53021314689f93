package ocrpdf

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// BuildASCIITable renders table rows as monospace text: cells padded to
// the widest entry in their column, joined with '|', rows separated by
// '+'/'-' border lines. Rows with fewer cells are padded with empty ones.
func BuildASCIITable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return nil
	}

	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if w := ansi.PrintableRuneWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	border := asciiBorder(widths)
	lines := make([]string, 0, 2*len(rows)+1)
	lines = append(lines, border)
	for _, row := range rows {
		var b strings.Builder
		b.WriteByte('|')
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteByte(' ')
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", width-ansi.PrintableRuneWidth(cell)))
			b.WriteString(" |")
		}
		lines = append(lines, b.String())
		lines = append(lines, border)
	}
	return lines
}

func asciiBorder(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	return b.String()
}
