// Package ingest turns images and PDF files into OCR markdown: it
// discovers page images, drives the OCR engine over them and emits the
// image-index and page-break markers the renderer paginates on.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/ocrpdf/ocr"
)

// Engine performs OCR on one image. *ocr.Client implements it.
type Engine interface {
	ProcessImage(ctx context.Context, name string, image []byte, opts ocr.Options) (string, error)
}

// Processor runs OCR over directories and PDF files.
type Processor struct {
	Engine Engine
	Log    *slog.Logger
}

func (p *Processor) logger() *slog.Logger {
	if p.Log != nil {
		return p.Log
	}
	return slog.New(slog.DiscardHandler)
}

// ProcessDir OCRs every image in dir in name order and concatenates the
// results. Each image's markdown is preceded by an image-index marker;
// a page-break marker separates consecutive images.
func (p *Processor) ProcessDir(ctx context.Context, dir string, opts ocr.Options) (string, error) {
	paths, err := ListImages(dir)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("ingest: no images found in %s", dir)
	}

	log := p.logger()
	var b strings.Builder
	for i, path := range paths {
		log.Info("processing image", "image", i+1, "total", len(paths), "path", path)

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("ingest: read image: %w", err)
		}
		markdown, err := p.Engine.ProcessImage(ctx, filepath.Base(path), data, opts)
		if err != nil {
			return "", fmt.Errorf("ingest: ocr %s: %w", filepath.Base(path), err)
		}

		fmt.Fprintf(&b, "---IMAGE_INDEX:%d---\n", i)
		b.WriteString(markdown)
		b.WriteString("\n\n")
		if i < len(paths)-1 {
			b.WriteString("---PAGE_BREAK---\n\n")
		}
	}
	return b.String(), nil
}

// ProcessDirJoined stacks the directory's images into one tall canvas
// and OCRs it in a single request. More than MaxJoinImages images are
// reduced to the tallest ones first.
func (p *Processor) ProcessDirJoined(ctx context.Context, dir string, opts ocr.Options) (string, error) {
	paths, err := ListImages(dir)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("ingest: no images found in %s", dir)
	}

	log := p.logger()
	if len(paths) > MaxJoinImages {
		log.Warn("too many images to join", "found", len(paths), "limit", MaxJoinImages)
		paths = SelectJoinCandidates(paths)
	}

	log.Info("joining images", "count", len(paths))
	joined, err := JoinImages(paths)
	if err != nil {
		return "", err
	}

	opts.Joined = true
	markdown, err := p.Engine.ProcessImage(ctx, "joined.png", joined, opts)
	if err != nil {
		return "", fmt.Errorf("ingest: ocr joined image: %w", err)
	}
	return markdown, nil
}

// ProcessPDF rasterizes pdfPath into tempDir with pdftoppm and OCRs the
// page images. When pdftoppm is missing and useNative is set, the text
// is pulled straight out of the PDF's content streams instead; without
// useNative the error explains how to install poppler-utils.
func (p *Processor) ProcessPDF(ctx context.Context, pdfPath, tempDir string, dpi int, useNative bool) (string, error) {
	log := p.logger()

	if n, err := PageCount(pdfPath); err == nil {
		log.Info("extracting pdf pages", "path", pdfPath, "pages", n)
	}

	err := RasterizePages(ctx, pdfPath, tempDir, dpi)
	if errors.Is(err, ErrPdftoppmMissing) {
		if useNative {
			log.Warn("pdftoppm not found, falling back to native text extraction")
			return ExtractText(pdfPath)
		}
		return "", fmt.Errorf("%w: install poppler-utils (macOS: brew install poppler, Debian/Ubuntu: apt-get install poppler-utils)", ErrPdftoppmMissing)
	}
	if err != nil {
		return "", err
	}

	return p.ProcessDir(ctx, tempDir, ocr.Options{})
}
