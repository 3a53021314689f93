// Package ocrpdf reconstructs paginated documents from OCR markdown.
//
// OCR markdown is the loosely tagged text an OCR inference model emits:
// markdown headers and list markers, a minimal HTML table subset, optional
// per-block bounding boxes in <|det|> tags, and whole-line sentinels that
// separate source images and request page breaks. This package parses that
// stream into typed text blocks, classifies them (lists, headers, tables,
// centering), and provides the shared word-wrap and monospace table
// utilities the layout engines build on.
//
// The pdf sub-package turns the parsed blocks into a paginated PDF, either
// by replaying the bounding-box geometry (coordinate mode) or by flowing
// text sequentially (plain mode). The ocr and ingest sub-packages are the
// upstream collaborators: the inference client that produces OCR markdown
// from image bytes, and the traversal/rasterization pipeline that feeds it.
//
// Example:
//
//	blocks := ocrpdf.ParseBlocks(markdown)
//	for _, b := range blocks {
//		if ocrpdf.IsTable(b.Text) {
//			rows := ocrpdf.ParseTableRows(b.Text)
//			_ = rows
//		}
//	}
package ocrpdf
