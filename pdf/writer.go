package pdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "Helvetica"
	monoFamily = "Courier"
)

// document wraps the page canvas: positioned text runs, line segments and
// page creation. Pages grow monotonically; the whole document stays in
// memory until output writes it in one buffered operation.
type document struct {
	pdf   *gofpdf.Fpdf
	cfg   Config
	pages int
}

func newDocument(cfg Config) *document {
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	f.SetTitle("OCR Document", true)
	f.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	f.SetAutoPageBreak(false, cfg.Margin)
	d := &document{pdf: f, cfg: cfg}
	d.addPage()
	return d
}

func (d *document) addPage() {
	d.pdf.AddPage()
	d.pages++
}

// text places a run at (x, y) with y at the baseline, measured from the
// top of the page.
func (d *document) text(x, y float64, s string, style string, size float64) {
	d.pdf.SetFont(fontFamily, style, size)
	d.pdf.Text(x, y, s)
}

// monoText places a run in the monospace face.
func (d *document) monoText(x, y float64, s string, size float64) {
	d.pdf.SetFont(monoFamily, "", size)
	d.pdf.Text(x, y, s)
}

func (d *document) line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

func (d *document) output(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("pdf document: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}
