package ocrpdf

import (
	"strconv"
	"strings"
)

// TextBlock is a classified, positioned unit of text extracted from OCR
// markdown. Coordinates are in source-image pixels with the origin at the
// top-left corner.
type TextBlock struct {
	Text           string
	X              float64
	Y              float64
	Width          float64
	Height         float64
	ImageIndex     int
	ForcePageBreak bool
}

const (
	imageIndexPrefix = "---IMAGE_INDEX:"
	sentinelSuffix   = "---"
	pageBreakLine    = "---PAGE_BREAK---"
	detOpen          = "<|det|>"
	detClose         = "<|/det|>"
)

// ParseBlocks scans OCR markdown for bounding-box tagged text blocks.
//
// Sentinel lines set the current image index or flag a page break for the
// next emitted block; they are consumed and never become content. A line
// carrying a <|det|>[[x1,y1,x2,y2]]<|/det|> pair starts a block whose text
// is the following run of non-empty, non-tag lines joined by single spaces.
// Malformed payloads and det tags with no trailing text are skipped without
// emitting a block.
func ParseBlocks(markdown string) []TextBlock {
	var blocks []TextBlock
	lines := strings.Split(markdown, "\n")
	pendingBreak := false
	imageIndex := 0

	for i := 0; i < len(lines); {
		line := lines[i]

		if idx, ok := parseImageIndexLine(line); ok {
			imageIndex = idx
			i++
			continue
		}
		if strings.TrimSpace(line) == pageBreakLine {
			pendingBreak = true
			i++
			continue
		}

		start := strings.Index(line, detOpen)
		end := strings.Index(line, detClose)
		if start == -1 || end == -1 || end < start {
			i++
			continue
		}
		box, ok := parseBoundingBox(line[start+len(detOpen) : end])
		if !ok {
			i++
			continue
		}

		var text []string
		j := i + 1
		for j < len(lines) {
			next := strings.TrimSpace(lines[j])
			if next == "" || strings.HasPrefix(next, "<|") {
				break
			}
			text = append(text, next)
			j++
		}
		if len(text) > 0 {
			blocks = append(blocks, TextBlock{
				Text:           strings.Join(text, " "),
				X:              box[0],
				Y:              box[1],
				Width:          box[2] - box[0],
				Height:         box[3] - box[1],
				ImageIndex:     imageIndex,
				ForcePageBreak: pendingBreak,
			})
			pendingBreak = false
		}
		i = j
	}
	return blocks
}

func parseImageIndexLine(line string) (int, bool) {
	rest, ok := strings.CutPrefix(line, imageIndexPrefix)
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, sentinelSuffix)
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// parseBoundingBox parses a strict [[x1,y1,x2,y2]] payload.
func parseBoundingBox(s string) ([4]float64, bool) {
	var box [4]float64
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[[") || !strings.HasSuffix(s, "]]") {
		return box, false
	}
	parts := strings.Split(s[2:len(s)-2], ",")
	if len(parts) != 4 {
		return box, false
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return box, false
		}
		box[i] = v
	}
	return box, true
}
