package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrPdftoppmMissing reports that the poppler-utils pdftoppm binary is
// not installed.
var ErrPdftoppmMissing = errors.New("ingest: pdftoppm not found")

// RasterizePages renders every page of pdfPath as PNG files named
// page-N.png under outDir using pdftoppm.
func RasterizePages(ctx context.Context, pdfPath, outDir string, dpi int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ingest: create temp directory: %w", err)
	}

	prefix := filepath.Join(outDir, "page")
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-r", strconv.Itoa(dpi),
		pdfPath,
		prefix,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrPdftoppmMissing
		}
		return fmt.Errorf("ingest: pdftoppm: %w (output: %s)", err, output)
	}
	return nil
}

// PageCount returns the number of pages in pdfPath.
func PageCount(pdfPath string) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("ingest: open pdf: %w", err)
	}
	defer f.Close()
	n, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("ingest: page count: %w", err)
	}
	return n, nil
}

// ExtractText pulls the text operands out of pdfPath's content streams.
// It only handles simple fonts with literal string operands, which is
// enough for a last-resort fallback when no rasterizer is installed.
func ExtractText(pdfPath string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "ocrpdf-content-*")
	if err != nil {
		return "", fmt.Errorf("ingest: create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := api.ExtractContentFile(pdfPath, tmpDir, nil, nil); err != nil {
		return "", fmt.Errorf("ingest: extract content: %w", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("ingest: read extracted content: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(tmpDir, name))
		if err != nil {
			return "", fmt.Errorf("ingest: read content stream: %w", err)
		}
		b.WriteString(contentStreamText(string(data)))
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String()), nil
}

// contentStreamText scans one content stream for text-showing operators
// (Tj, TJ, ' and ") and collects their literal string operands. Text
// positioning operators (Td, TD, T*) and ET become line breaks.
func contentStreamText(stream string) string {
	var out strings.Builder
	var pending []string

	flush := func() {
		for _, s := range pending {
			out.WriteString(s)
		}
		pending = pending[:0]
	}

	i := 0
	for i < len(stream) {
		c := stream[i]
		switch {
		case c == '(':
			s, next := parseLiteralString(stream, i)
			pending = append(pending, s)
			i = next
		case c == 'T' && i+1 < len(stream):
			switch stream[i+1] {
			case 'j', 'J':
				flush()
			case 'd', 'D':
				pending = pending[:0]
				out.WriteByte('\n')
			case '*':
				pending = pending[:0]
				out.WriteByte('\n')
			}
			i += 2
		case c == '\'' || c == '"':
			out.WriteByte('\n')
			flush()
			i++
		case c == 'E' && i+1 < len(stream) && stream[i+1] == 'T':
			pending = pending[:0]
			out.WriteByte('\n')
			i += 2
		default:
			i++
		}
	}
	return out.String()
}

// parseLiteralString reads a parenthesized PDF string starting at open
// and returns the decoded text and the index after the closing paren.
func parseLiteralString(stream string, open int) (string, int) {
	var b strings.Builder
	depth := 1
	i := open + 1
	for i < len(stream) && depth > 0 {
		c := stream[i]
		switch c {
		case '\\':
			if i+1 < len(stream) {
				switch e := stream[i+1]; e {
				case 'n':
					b.WriteByte('\n')
				case 't':
					b.WriteByte('\t')
				case 'r', 'b', 'f':
					// skip
				default:
					b.WriteByte(e)
				}
				i += 2
				continue
			}
			i++
		case '(':
			depth++
			b.WriteByte(c)
			i++
		case ')':
			depth--
			if depth > 0 {
				b.WriteByte(c)
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), i
}
