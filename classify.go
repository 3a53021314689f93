package ocrpdf

import (
	"regexp"
	"strings"
	"unicode"
)

// symbolMarkers are the single-glyph list markers, each followed by a space.
var symbolMarkers = []string{"☐ ", "• ", "- ", "* "}

var (
	numberedMarkerRe = regexp.MustCompile(`\d+[.)]\s`)
	leadingNumberRe  = regexp.MustCompile(`^\s*\d+[.)]\s`)
	centerTagRe      = regexp.MustCompile(`</?center>`)
	structureTagRe   = regexp.MustCompile(`</?(?:table|tr|td|th|thead|tbody)>`)
	tableRowRe       = regexp.MustCompile(`(?si)<tr>(.*?)</tr>`)
	tableCellRe      = regexp.MustCompile(`(?si)<t[dh]>(.*?)</t[dh]>`)
)

// IsListItem reports whether text starts with an explicit list marker:
// a checkbox, bullet, dash or asterisk glyph followed by a space, or a
// numbered marker like "1." or "1)" followed by whitespace. Dash runs
// ("---") and emphasis ("* *") do not count.
func IsListItem(text string) bool {
	t := strings.TrimLeft(text, " \t")
	if strings.HasPrefix(t, "☐ ") || strings.HasPrefix(t, "• ") {
		return true
	}
	if strings.HasPrefix(t, "* ") && !strings.HasPrefix(t, "* *") {
		return true
	}
	if strings.HasPrefix(t, "- ") && len(t) > 2 && !strings.HasPrefix(t, "---") {
		return true
	}
	return leadingNumberRe.MatchString(t)
}

// SplitListItems splits a block that may hold several run-together list
// items. Rules are tried in order, first match wins: recurring numbered
// markers, recurring symbolic markers, internal line breaks, whole text.
func SplitListItems(text string) []string {
	trimmed := strings.TrimSpace(text)

	if locs := numberedMarkerRe.FindAllStringIndex(trimmed, -1); len(locs) >= 2 {
		var items []string
		last := 0
		for _, loc := range locs {
			if loc[0] != last {
				if chunk := strings.TrimSpace(trimmed[last:loc[0]]); chunk != "" {
					items = append(items, chunk)
				}
			}
			last = loc[0]
		}
		if last < len(trimmed) {
			items = append(items, strings.TrimSpace(trimmed[last:]))
		}
		if len(items) > 1 {
			return items
		}
	}

	for _, marker := range symbolMarkers {
		if strings.Count(trimmed, marker) < 2 {
			continue
		}
		var items []string
		for i, part := range strings.Split(trimmed, marker) {
			part = strings.TrimSpace(part)
			if i == 0 {
				if part != "" {
					items = append(items, part)
				}
				continue
			}
			items = append(items, marker+part)
		}
		if len(items) > 1 {
			return items
		}
	}

	if IsListItem(trimmed) && strings.Contains(trimmed, "\n") {
		var items []string
		for _, line := range strings.Split(trimmed, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, line)
			}
		}
		if len(items) > 0 {
			return items
		}
	}

	return []string{text}
}

// StripListMarker removes the leading list marker and one following space.
func StripListMarker(s string) string {
	t := strings.TrimSpace(s)
	for _, marker := range symbolMarkers {
		if strings.HasPrefix(t, marker) {
			return strings.TrimLeft(t[len(marker):], " ")
		}
	}
	if loc := leadingNumberRe.FindStringIndex(t); loc != nil {
		return strings.TrimSpace(t[loc[1]:])
	}
	return t
}

// ParseHeader returns the text without header markers and its level.
// A leading run of 1-6 '#' immediately followed by whitespace is a header;
// anything else returns the text unchanged with level 0.
func ParseHeader(text string) (string, int) {
	trimmed := strings.TrimSpace(text)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(trimmed) {
		return text, 0
	}
	if !unicode.IsSpace(rune(trimmed[level])) {
		return text, 0
	}
	return strings.TrimSpace(trimmed[level:]), level
}

// StripHTMLTags removes the minimal HTML subset from text, reporting
// whether a <center> tag was present. Table structure tags collapse to a
// single space: content survives, structure does not.
func StripHTMLTags(text string) (string, bool) {
	centered := strings.Contains(text, "<center>")
	cleaned := centerTagRe.ReplaceAllString(text, "")
	cleaned = structureTagRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned), centered
}

// IsTable reports whether the block carries an HTML table.
func IsTable(text string) bool {
	return strings.Contains(strings.ToLower(text), "<table>")
}

// ParseTableRows extracts row and cell contents from an HTML table block.
// Unmatched or absent tags yield zero rows; callers skip rendering then.
func ParseTableRows(tableHTML string) [][]string {
	var rows [][]string
	for _, row := range tableRowRe.FindAllStringSubmatch(tableHTML, -1) {
		var cells []string
		for _, cell := range tableCellRe.FindAllStringSubmatch(row[1], -1) {
			cells = append(cells, strings.TrimSpace(cell[1]))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}
