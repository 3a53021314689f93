package pdf

import (
	"math"
	"sort"

	"pkt.systems/ocrpdf"
)

// coordEngine places blocks on the page using their OCR bounding boxes.
// Source pixel coordinates are scaled to millimetres and measured from the
// top of the page; each source image starts a fresh page.
type coordEngine struct {
	doc *document
	cfg Config

	pageStartY float64 // transformed Y of the block that opened this page
	lastYLeft  float64 // last placed baseline in the left column
	lastYRight float64 // last placed baseline in the right column
	prevBlockY float64 // previous block's raw source Y, for jump detection
	forceNew   bool
}

func newCoordEngine(doc *document, cfg Config) *coordEngine {
	return &coordEngine{doc: doc, cfg: cfg}
}

func (e *coordEngine) render(blocks []ocrpdf.TextBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].ImageIndex != blocks[j].ImageIndex {
			return blocks[i].ImageIndex < blocks[j].ImageIndex
		}
		return blocks[i].Y < blocks[j].Y
	})

	for _, b := range blocks {
		e.renderBlock(b)
	}
}

func (e *coordEngine) renderBlock(b ocrpdf.TextBlock) {
	cfg := e.cfg

	if b.ForcePageBreak {
		e.forceNew = true
	}

	// A large backward jump in source Y means the OCR output moved on to
	// a new image without a sentinel.
	if e.prevBlockY > cfg.BackwardGuard && b.Y < e.prevBlockY-cfg.BackwardJump {
		e.forceNew = true
	}
	e.prevBlockY = b.Y

	isList := ocrpdf.IsListItem(b.Text)
	isTable := ocrpdf.IsTable(b.Text)

	text := ocrpdf.Clean(b.Text)
	if text == "" {
		return
	}
	text, level := ocrpdf.ParseHeader(text)
	if !isTable {
		text, _ = ocrpdf.StripHTMLTags(text)
		if text == "" {
			return
		}
	}

	x := math.Min(b.X*cfg.Scale+cfg.Margin, cfg.usableWidth())
	blockY := b.Y * cfg.Scale

	if e.forceNew {
		e.newPage(0)
	} else if blockY-e.pageStartY > cfg.usableHeight() {
		e.newPage(blockY)
	}

	y := math.Min(cfg.Margin+blockY-e.pageStartY, cfg.bottomLimit())

	leftColumn := x < cfg.ColumnSplit

	size := clamp(b.Height*cfg.Scale*0.5, cfg.MinFontSize, cfg.MaxFontSize)

	// Keep blocks in the same column from overprinting each other.
	minGap := math.Max(size*ptToMm*1.5, 2.5)
	if last := e.lastY(leftColumn); last > 0 && y-last < minGap {
		y = last + minGap
	}

	size, style := headerFont(size, level)

	blockW := math.Max(b.Width*cfg.Scale, cfg.MinBlockWidth)
	blockW = math.Min(blockW, math.Max(cfg.PageWidth-cfg.Margin-x, 20))
	blockW = math.Min(blockW, cfg.MaxColumnWidth)

	avgChar := size * 0.5 * ptToMm
	maxChars := 60
	if avgChar > 0 {
		maxChars = int(math.Max(blockW/avgChar, 15))
	}

	switch {
	case isTable:
		rows := ocrpdf.ParseTableRows(text)
		if len(rows) > 0 {
			y = renderTable(e.doc, cfg, rows, x, y, blockW, 8)
			e.setLastY(leftColumn, y)
		}
	case isList:
		e.renderList(text, x, y, blockY, size, maxChars, leftColumn)
	default:
		e.renderWrapped(text, x, y, blockY, size, style, maxChars, leftColumn)
	}
}

// renderWrapped flows a block as wrapped lines from (x, y) downward,
// starting a fresh page if a line would run past the bottom margin.
func (e *coordEngine) renderWrapped(text string, x, y, blockY, size float64, style string, maxChars int, leftColumn bool) {
	lineStep := size * 0.35
	for _, line := range ocrpdf.WrapChars(text, maxChars) {
		if y > e.cfg.bottomLimit() {
			e.newPage(blockY)
			y = e.cfg.Margin + 10
		}
		e.doc.text(x, y, line, style, size)
		y += lineStep
	}
	e.setLastY(leftColumn, y)
}

// renderList splits a block into its list items and draws each as a bold
// bullet glyph with the wrapped body indented past it.
func (e *coordEngine) renderList(text string, x, y, blockY, size float64, maxChars int, leftColumn bool) {
	bulletSize := math.Max(size, 8)
	bulletOffset := bulletSize * 0.5 * ptToMm * 2
	lineStep := size * 0.35

	for _, item := range ocrpdf.SplitListItems(text) {
		body := ocrpdf.StripListMarker(item)
		if body == "" {
			continue
		}
		e.doc.text(x, y, "•", "B", bulletSize)
		lines := ocrpdf.WrapChars(body, maxChars)
		for i, line := range lines {
			e.doc.text(x+bulletOffset, y, line, "", size)
			if i < len(lines)-1 {
				y += lineStep
				if y > e.cfg.bottomLimit() {
					e.newPage(blockY)
					y = e.cfg.Margin + 10
				}
			}
		}
		e.setLastY(leftColumn, y+lineStep)
		y += lineStep + 1
	}
}

// newPage opens a fresh page; topY becomes the transformed Y that maps to
// the top margin, so a forced break passes 0 and an overflow passes the
// overflowing block's own Y.
func (e *coordEngine) newPage(topY float64) {
	e.doc.addPage()
	e.pageStartY = topY
	e.lastYLeft = 0
	e.lastYRight = 0
	e.forceNew = false
}

func (e *coordEngine) lastY(left bool) float64 {
	if left {
		return e.lastYLeft
	}
	return e.lastYRight
}

func (e *coordEngine) setLastY(left bool, y float64) {
	if left {
		e.lastYLeft = y
	} else {
		e.lastYRight = y
	}
}

// headerFont scales and caps the base size for a markdown header level.
// Level 0 is body text.
func headerFont(base float64, level int) (float64, string) {
	switch level {
	case 0:
		return base, ""
	case 1:
		return math.Min(base*2.0, 18), "B"
	case 2:
		return math.Min(base*1.5, 14), "B"
	case 3:
		return math.Min(base*1.3, 12), "B"
	default:
		return base, "B"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
