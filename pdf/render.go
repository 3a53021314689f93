package pdf

import (
	"fmt"
	"io"

	"pkt.systems/ocrpdf"
)

// RenderRequest describes one markdown to PDF rendering. Reader supplies
// the OCR markdown, Writer receives the finished document. Zero-value
// Config fields fall back to DefaultConfig.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	Mode   Mode
	Config Config
}

// Render reads OCR markdown from req.Reader and writes a PDF document to
// req.Writer. ModeCoordinate places text blocks by their bounding boxes;
// input without any boxed blocks falls back to the plain flow so the
// document is never empty.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("pdf render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}

	raw, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("pdf render: read input: %w", err)
	}

	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)

	doc := newDocument(cfg)

	mode := req.Mode
	var blocks []ocrpdf.TextBlock
	if mode == ModeCoordinate {
		blocks = ocrpdf.ParseBlocks(string(raw))
		if len(blocks) == 0 {
			mode = ModePlain
		}
	}

	switch mode {
	case ModeCoordinate:
		newCoordEngine(doc, cfg).render(blocks)
	default:
		newPlainEngine(doc, cfg).render(ocrpdf.CleanPlain(string(raw)))
	}

	return doc.output(req.Writer)
}
