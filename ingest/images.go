package ingest

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"

	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// MaxJoinImages caps how many images a joined request combines; very
// tall canvases degrade OCR quality and inference time.
const MaxJoinImages = 10

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ListImages returns the image files directly under dir, sorted by name.
// Subdirectories are not descended into.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: read directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// JoinImages stacks the given images vertically on a white canvas as
// wide as the widest image, centering narrower ones, and returns the
// PNG encoding of the result.
func JoinImages(paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("ingest: no images to join")
	}

	images := make([]image.Image, 0, len(paths))
	maxWidth, totalHeight := 0, 0
	for _, p := range paths {
		img, err := decodeImage(p)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		if b.Dx() > maxWidth {
			maxWidth = b.Dx()
		}
		totalHeight += b.Dy()
		images = append(images, img)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, maxWidth, totalHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	y := 0
	for _, img := range images {
		b := img.Bounds()
		x := (maxWidth - b.Dx()) / 2
		dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
		draw.Draw(canvas, dst, img, b.Min, draw.Src)
		y += b.Dy()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("ingest: encode joined image: %w", err)
	}
	return buf.Bytes(), nil
}

// SelectJoinCandidates reduces paths to at most MaxJoinImages, keeping
// tall images first (aspect ratio height/width descending), then larger
// ones. Images whose dimensions cannot be read keep a neutral priority.
func SelectJoinCandidates(paths []string) []string {
	if len(paths) <= MaxJoinImages {
		return paths
	}

	type info struct {
		path   string
		aspect float64
		area   int
	}
	infos := make([]info, 0, len(paths))
	for _, p := range paths {
		w, h := 1000, 1000
		if cfg, err := decodeConfig(p); err == nil && cfg.Width > 0 {
			w, h = cfg.Width, cfg.Height
		}
		infos = append(infos, info{path: p, aspect: float64(h) / float64(w), area: w * h})
	}
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].aspect != infos[j].aspect {
			return infos[i].aspect > infos[j].aspect
		}
		return infos[i].area > infos[j].area
	})

	selected := make([]string, MaxJoinImages)
	for i := range selected {
		selected[i] = infos[i].path
	}
	return selected
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ingest: decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	return cfg, err
}
