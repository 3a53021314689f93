package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/ocrpdf/ocr"
)

type fakeEngine struct {
	names  []string
	opts   []ocr.Options
	result string
	err    error
}

func (f *fakeEngine) ProcessImage(ctx context.Context, name string, image []byte, opts ocr.Options) (string, error) {
	f.names = append(f.names, name)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return "", f.err
	}
	if f.result != "" {
		return f.result, nil
	}
	return "text from " + name, nil
}

func TestProcessDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "p1.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "p2.png"), 4, 4)

	eng := &fakeEngine{}
	p := &Processor{Engine: eng}
	got, err := p.ProcessDir(context.Background(), dir, ocr.Options{})
	if err != nil {
		t.Fatalf("ProcessDir: %v", err)
	}

	want := "---IMAGE_INDEX:0---\ntext from p1.png\n\n---PAGE_BREAK---\n\n---IMAGE_INDEX:1---\ntext from p2.png\n\n"
	if got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if len(eng.names) != 2 || eng.names[0] != "p1.png" || eng.names[1] != "p2.png" {
		t.Fatalf("engine calls = %v", eng.names)
	}
}

func TestProcessDirEmpty(t *testing.T) {
	p := &Processor{Engine: &fakeEngine{}}
	if _, err := p.ProcessDir(context.Background(), t.TempDir(), ocr.Options{}); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestProcessDirJoined(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "p1.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "p2.png"), 4, 4)

	eng := &fakeEngine{result: "joined markdown"}
	p := &Processor{Engine: eng}
	got, err := p.ProcessDirJoined(context.Background(), dir, ocr.Options{})
	if err != nil {
		t.Fatalf("ProcessDirJoined: %v", err)
	}
	if got != "joined markdown" {
		t.Fatalf("output = %q", got)
	}
	if len(eng.opts) != 1 || !eng.opts[0].Joined {
		t.Fatalf("joined flag not set on request: %+v", eng.opts)
	}
	// Joined output carries no pagination markers.
	if strings.Contains(got, "---IMAGE_INDEX") {
		t.Fatalf("joined output contains image markers")
	}
}
