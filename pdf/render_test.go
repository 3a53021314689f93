package pdf

import (
	"bytes"
	"strings"
	"testing"
)

const coordinateSample = `---IMAGE_INDEX:0---

<|det|>[[100,80,900,140]]<|/det|>
# Quarterly Report

<|det|>[[100,200,900,400]]<|/det|>
Revenue grew in every region, with the strongest gains in the north.

---PAGE_BREAK---

---IMAGE_INDEX:1---

<|det|>[[100,90,900,150]]<|/det|>
## Appendix
`

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("# Title\n\nSome body text that flows.\n\n- first item\n- second item\n"),
		Writer: &buf,
		Mode:   ModePlain,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with %%PDF- header: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestRenderCoordinate(t *testing.T) {
	var buf bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader(coordinateSample),
		Writer: &buf,
		Mode:   ModeCoordinate,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with %%PDF- header")
	}
}

func TestRenderCoordinateFallsBackToPlain(t *testing.T) {
	// Coordinate mode with no boxed blocks must still produce a document.
	var buf bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("Just plain text without any bounding boxes.\n"),
		Writer: &buf,
		Mode:   ModeCoordinate,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty output from fallback rendering")
	}
}

func TestRenderNilReader(t *testing.T) {
	err := Render(RenderRequest{Writer: &bytes.Buffer{}})
	if err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestRenderNilWriter(t *testing.T) {
	err := Render(RenderRequest{Reader: strings.NewReader("x")})
	if err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestRenderConfigOverride(t *testing.T) {
	var buf bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("short text"),
		Writer: &buf,
		Config: Config{PageWidth: 148, PageHeight: 210},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with %%PDF- header")
	}
}
