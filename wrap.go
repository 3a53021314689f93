package ocrpdf

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// WrapChars greedily wraps text against a width limit in display columns.
// A word is added while the line stays within the limit; the word that
// would overflow starts the next line. A single word wider than the limit
// is emitted overlong rather than split.
func WrapChars(text string, maxCols int) []string {
	var lines []string
	var line strings.Builder
	width := 0
	for _, word := range strings.Fields(text) {
		w := ansi.PrintableRuneWidth(word)
		if width > 0 && width+1+w > maxCols {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		if width > 0 {
			line.WriteByte(' ')
			width++
		}
		line.WriteString(word)
		width += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// WrapWidth wraps by accumulating estimated word widths against a physical
// limit, charWidth being the estimated width of one display column. Used
// where the caller flows against page units rather than a column count.
func WrapWidth(text string, maxWidth, charWidth float64) []string {
	var lines []string
	var line strings.Builder
	width := 0.0
	for _, word := range strings.Fields(text) {
		w := float64(ansi.PrintableRuneWidth(word)) * charWidth
		if line.Len() > 0 && width+charWidth+w > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
			width += charWidth
		}
		line.WriteString(word)
		width += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
