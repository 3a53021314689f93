package pdf

// Mode selects a layout engine.
type Mode int

const (
	// ModePlain flows text sequentially in a single column, ignoring
	// coordinates.
	ModePlain Mode = iota
	// ModeCoordinate places blocks using their OCR bounding boxes.
	ModeCoordinate
)

// TableStyle selects a table back end.
type TableStyle int

const (
	// TableBordered draws vector borders around wrapped cell text.
	TableBordered TableStyle = iota
	// TableASCII renders tables as padded monospace text.
	TableASCII
)

// Config holds page geometry and the empirical placement constants of
// coordinate-mode layout. The column split and backward-jump values are
// tuned against real OCR output; they are configuration, not derivation.
type Config struct {
	PageWidth  float64 // mm
	PageHeight float64 // mm
	Margin     float64 // mm

	Scale          float64 // source px to mm
	ColumnSplit    float64 // left/right column boundary, mm
	BackwardJump   float64 // px drop signalling a new source image
	BackwardGuard  float64 // px minimum before the jump check applies
	MaxColumnWidth float64 // mm
	MinBlockWidth  float64 // mm
	MinFontSize    float64 // pt
	MaxFontSize    float64 // pt
	TableStyle     TableStyle
}

// DefaultConfig returns a baseline A4 configuration.
func DefaultConfig() Config {
	return Config{
		PageWidth:      210,
		PageHeight:     297,
		Margin:         5,
		Scale:          0.20,
		ColumnSplit:    95,
		BackwardJump:   50,
		BackwardGuard:  100,
		MaxColumnWidth: 95,
		MinBlockWidth:  25,
		MinFontSize:    6,
		MaxFontSize:    10,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageWidth > 0 {
		dst.PageWidth = src.PageWidth
	}
	if src.PageHeight > 0 {
		dst.PageHeight = src.PageHeight
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.Scale > 0 {
		dst.Scale = src.Scale
	}
	if src.ColumnSplit > 0 {
		dst.ColumnSplit = src.ColumnSplit
	}
	if src.BackwardJump > 0 {
		dst.BackwardJump = src.BackwardJump
	}
	if src.BackwardGuard > 0 {
		dst.BackwardGuard = src.BackwardGuard
	}
	if src.MaxColumnWidth > 0 {
		dst.MaxColumnWidth = src.MaxColumnWidth
	}
	if src.MinBlockWidth > 0 {
		dst.MinBlockWidth = src.MinBlockWidth
	}
	if src.MinFontSize > 0 {
		dst.MinFontSize = src.MinFontSize
	}
	if src.MaxFontSize > 0 {
		dst.MaxFontSize = src.MaxFontSize
	}
	if src.TableStyle != TableBordered {
		dst.TableStyle = src.TableStyle
	}
}

func (c Config) usableWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

func (c Config) usableHeight() float64 {
	return c.PageHeight - 2*c.Margin
}

func (c Config) bottomLimit() float64 {
	return c.PageHeight - c.Margin
}

// ptToMm converts a point length to millimetres.
const ptToMm = 0.352778
