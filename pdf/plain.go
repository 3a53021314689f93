package pdf

import (
	"math"
	"strings"

	"github.com/muesli/reflow/ansi"
	"pkt.systems/ocrpdf"
)

const (
	plainTopOffset    = 17.0 // mm from the top of the page to the first baseline
	plainBottomLimit  = 20.0 // mm from the bottom where the flow wraps to a new page
	plainBlankGap     = 3.0  // mm advanced by a blank line
	plainFontSize     = 10.0 // pt body text
	plainLineStep     = 5.0  // mm between body lines
	plainListItemGap  = 2.0  // mm below each list item
	plainTableReserve = 50.0 // mm of page a table needs before it starts
	plainTableFont    = 9.0  // pt
	plainTableGap     = 5.0  // mm below a table
)

// plainEngine flows cleaned markdown down the page line by line, ignoring
// any coordinate information. Headers get larger bold faces, list items a
// bullet and hanging indent, tables the configured table back end.
type plainEngine struct {
	doc *document
	cfg Config
	y   float64

	// textGroups counts flowed paragraph/header groups, for tests.
	textGroups int
}

func newPlainEngine(doc *document, cfg Config) *plainEngine {
	return &plainEngine{doc: doc, cfg: cfg, y: plainTopOffset}
}

func (e *plainEngine) render(text string) {
	var tableLines []string
	inTable := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if inTable {
			tableLines = append(tableLines, trimmed)
			if strings.Contains(strings.ToLower(trimmed), "</table>") {
				e.renderTableBlock(strings.Join(tableLines, " "))
				tableLines = nil
				inTable = false
			}
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), "<table>") {
			tableLines = append(tableLines, trimmed)
			if strings.Contains(strings.ToLower(trimmed), "</table>") {
				e.renderTableBlock(strings.Join(tableLines, " "))
				tableLines = nil
			} else {
				inTable = true
			}
			continue
		}

		if trimmed == "" {
			e.y += plainBlankGap
			continue
		}

		e.checkPage(plainBottomLimit)

		if ocrpdf.IsListItem(trimmed) {
			for _, item := range ocrpdf.SplitListItems(trimmed) {
				e.renderListItem(item)
			}
			continue
		}

		e.renderText(trimmed)
	}

	// An unterminated table still renders what was collected.
	if len(tableLines) > 0 {
		e.renderTableBlock(strings.Join(tableLines, " "))
	}
}

// checkPage starts a new page when fewer than reserve millimetres remain.
func (e *plainEngine) checkPage(reserve float64) {
	if e.y > e.cfg.PageHeight-reserve {
		e.doc.addPage()
		e.y = plainTopOffset
	}
}

func (e *plainEngine) renderListItem(item string) {
	body := ocrpdf.StripListMarker(item)
	if body == "" {
		return
	}
	e.checkPage(plainBottomLimit)

	avgChar := plainFontSize * 0.5 * ptToMm
	bulletOffset := avgChar * 2
	width := e.cfg.usableWidth() - bulletOffset - 1

	e.doc.text(e.cfg.Margin, e.y, "•", "B", plainFontSize)
	for _, line := range ocrpdf.WrapWidth(body, width, avgChar) {
		e.checkPage(plainBottomLimit)
		e.doc.text(e.cfg.Margin+bulletOffset, e.y, line, "", plainFontSize)
		e.y += plainLineStep
	}
	e.y += plainListItemGap
}

func (e *plainEngine) renderTableBlock(tableHTML string) {
	rows := ocrpdf.ParseTableRows(tableHTML)
	if len(rows) == 0 {
		return
	}
	e.checkPage(plainTableReserve)
	e.y = renderTable(e.doc, e.cfg, rows, e.cfg.Margin, e.y, e.cfg.usableWidth(), plainTableFont)
	e.y += plainTableGap
}

func (e *plainEngine) renderText(line string) {
	line, centered := ocrpdf.StripHTMLTags(line)
	if line == "" {
		return
	}

	size, spacing, style := plainFont(line)
	if style == "B" {
		line = strings.TrimLeft(line, "# ")
		if line == "" {
			return
		}
	}

	step := spacing * 0.8
	avgChar := size * 0.5 * ptToMm
	for _, wrapped := range ocrpdf.WrapWidth(line, e.cfg.usableWidth()-1, avgChar) {
		e.checkPage(plainBottomLimit)
		x := e.cfg.Margin
		if centered {
			lineWidth := float64(ansi.PrintableRuneWidth(wrapped)) * avgChar
			x += math.Max((e.cfg.usableWidth()-lineWidth)/2, 0)
		}
		e.doc.text(x, e.y, wrapped, style, size)
		e.y += step
	}
	e.y += spacing
	e.textGroups++
}

// plainFont maps a markdown header prefix to font size, block spacing and
// style. Anything without a header prefix is body text.
func plainFont(line string) (size, spacing float64, style string) {
	switch {
	case strings.HasPrefix(line, "# "):
		return 18, 10, "B"
	case strings.HasPrefix(line, "## "):
		return 16, 8, "B"
	case strings.HasPrefix(line, "### "):
		return 14, 7, "B"
	case strings.HasPrefix(line, "#### "):
		return 12, 6, "B"
	default:
		return plainFontSize, plainLineStep, ""
	}
}
