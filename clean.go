package ocrpdf

import (
	"regexp"
	"strings"
)

var (
	refSpanRe       = regexp.MustCompile(`(?s)<\|ref\|>.*?<\|/ref\|>`)
	groundingLineRe = regexp.MustCompile(`(?m)^<\|grounding\|>.*$`)
	thinkLineRe     = regexp.MustCompile(`(?m)^<\|think\|>.*$`)
	ocrLineRe       = regexp.MustCompile(`(?m)^<\|OCR\|>.*$`)
	controlLineRe   = regexp.MustCompile(`(?m)^<\|[^|]+\|>.*$`)
	detSpanRe       = regexp.MustCompile(`<\|det\|>.*?<\|/det\|>`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
	spaceOnlyRe     = regexp.MustCompile(`(?m)^[ \t]+$`)
	pageBreakRe     = regexp.MustCompile(`(?m)^---PAGE_BREAK---\s*$`)
	imageIndexRe    = regexp.MustCompile(`(?m)^---IMAGE_INDEX:\d+---\s*$`)
)

// Clean strips reference spans, control-directive lines and sentinel lines
// from OCR markdown and collapses runs of blank lines, while deliberately
// keeping <|det|> bounding-box tags for coordinate-mode layout.
func Clean(text string) string {
	cleaned := refSpanRe.ReplaceAllString(text, "")
	cleaned = groundingLineRe.ReplaceAllString(cleaned, "")
	cleaned = thinkLineRe.ReplaceAllString(cleaned, "")
	cleaned = ocrLineRe.ReplaceAllString(cleaned, "")
	cleaned = pageBreakRe.ReplaceAllString(cleaned, "")
	cleaned = imageIndexRe.ReplaceAllString(cleaned, "")
	cleaned = spaceOnlyRe.ReplaceAllString(cleaned, "")
	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

// CleanPlain strips every control tag including <|det|> bounding boxes and
// their payloads. Applying it twice equals applying it once.
func CleanPlain(text string) string {
	cleaned := detSpanRe.ReplaceAllString(text, "")
	cleaned = refSpanRe.ReplaceAllString(cleaned, "")
	cleaned = controlLineRe.ReplaceAllString(cleaned, "")
	cleaned = pageBreakRe.ReplaceAllString(cleaned, "")
	cleaned = imageIndexRe.ReplaceAllString(cleaned, "")
	cleaned = spaceOnlyRe.ReplaceAllString(cleaned, "")
	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
