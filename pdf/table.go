package pdf

import (
	"math"

	"github.com/muesli/reflow/ansi"
	"pkt.systems/ocrpdf"
)

const (
	tableCellPadding  = 0.5  // mm inside each cell, left and right
	tableBorderWidth  = 1.0  // mm budget per vertical border line
	tableLineHeight   = 5.5  // mm per wrapped cell line
	tableWrapSafety   = 0.85 // keep wrapped cell text off the borders
	tableMinWidth     = 10.0 // mm floor for distributable content width
	tableTrailingGap  = 2.0  // mm below the bottom border
	asciiTableStep    = 3.2  // mm per monospace table line
	asciiTablePadding = 1.0  // mm below an ASCII table
)

// renderTable draws rows at (x, y) using the configured back end and
// returns the vertical position below the table. Zero rows draw nothing.
func renderTable(doc *document, cfg Config, rows [][]string, x, y, maxWidth, fontSize float64) float64 {
	if cfg.TableStyle == TableASCII {
		return renderASCIITable(doc, rows, x, y, fontSize)
	}
	return renderBorderedTable(doc, rows, x, y, maxWidth, fontSize)
}

// renderBorderedTable draws a vector-bordered table. Column content widths
// are proportional to each column's longest cell; row height follows the
// tallest wrapped cell. Rows with missing trailing cells render them empty.
func renderBorderedTable(doc *document, rows [][]string, x, y, maxWidth, fontSize float64) float64 {
	columns := maxColumns(rows)
	if columns == 0 {
		return y
	}

	colChars := make([]int, columns)
	totalChars := 0
	for _, row := range rows {
		for i, cell := range row {
			if w := ansi.PrintableRuneWidth(cell); w > colChars[i] {
				colChars[i] = w
			}
		}
	}
	for _, w := range colChars {
		totalChars += w
	}

	avgChar := fontSize * 0.5 * ptToMm
	borders := float64(columns+1) * tableBorderWidth
	padding := float64(columns) * 2 * tableCellPadding
	available := math.Max(maxWidth-borders-padding, tableMinWidth)

	colWidths := make([]float64, columns)
	for i := range colWidths {
		if totalChars > 0 {
			colWidths[i] = float64(colChars[i]) / float64(totalChars) * available
		} else {
			colWidths[i] = available / float64(columns)
		}
	}

	// Baseline offset that roughly centres a single line in its cell.
	textCenterY := tableLineHeight/2 + fontSize*0.1*ptToMm

	rowHeights := make([]float64, len(rows))
	cellLines := make([][][]string, len(rows))
	for r, row := range rows {
		maxLines := 1
		cellLines[r] = make([][]string, columns)
		for c := 0; c < columns; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			maxChars := int(math.Max(colWidths[c]*tableWrapSafety/avgChar, 1))
			lines := ocrpdf.WrapChars(cell, maxChars)
			cellLines[r][c] = lines
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
		}
		rowHeights[r] = tableLineHeight*float64(maxLines) + 2*tableCellPadding
	}

	tableWidth := borders + padding
	for _, w := range colWidths {
		tableWidth += w
	}

	doc.line(x, y, x+tableWidth, y)
	for r := range rows {
		rowH := rowHeights[r]
		doc.line(x, y, x, y+rowH)
		cellX := x + tableBorderWidth
		for c := 0; c < columns; c++ {
			lineY := y + tableCellPadding + textCenterY
			for _, line := range cellLines[r][c] {
				doc.text(cellX+tableCellPadding, lineY, line, "", fontSize)
				lineY += tableLineHeight
			}
			cellX += colWidths[c] + 2*tableCellPadding + tableBorderWidth
			doc.line(cellX, y, cellX, y+rowH)
		}
		y += rowH
		doc.line(x, y, x+tableWidth, y)
	}

	return y + tableTrailingGap
}

// renderASCIITable places the monospace fallback rendering line by line.
func renderASCIITable(doc *document, rows [][]string, x, y, fontSize float64) float64 {
	lines := ocrpdf.BuildASCIITable(rows)
	for _, line := range lines {
		doc.monoText(x, y, line, fontSize)
		y += asciiTableStep
	}
	if len(lines) > 0 {
		y += asciiTablePadding
	}
	return y
}

func maxColumns(rows [][]string) int {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	return columns
}
