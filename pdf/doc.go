// Package pdf renders OCR markdown to paginated PDF documents.
//
// Two layout engines are provided. ModeCoordinate reads the bounding
// boxes embedded in OCR output and reconstructs the source layout:
// scaled positions, per-block font sizing, two-column awareness and a
// new page per source image. ModePlain ignores coordinates and flows
// the cleaned markdown top to bottom with header, list and table
// styling. Both share a table back end that draws bordered cells or,
// optionally, monospace ASCII tables.
//
// The entry point is Render with a RenderRequest; see the root ocrpdf
// package for the markdown dialect being rendered.
package pdf
