package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/ocrpdf"
	"pkt.systems/ocrpdf/pdf"
)

var (
	convertInput       string
	convertOutput      string
	convertCoordinates bool
	convertClean       bool
)

var markdownToPDFCmd = &cobra.Command{
	Use:   "markdown-to-pdf",
	Short: "Render OCR markdown as a paginated PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(convertInput)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer in.Close()

		mode := pdf.ModePlain
		if convertCoordinates {
			mode = pdf.ModeCoordinate
		}

		var buf bytes.Buffer
		if err := pdf.Render(pdf.RenderRequest{
			Reader: in,
			Writer: &buf,
			Mode:   mode,
		}); err != nil {
			return err
		}

		if convertOutput == "" {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("refusing to write PDF to a terminal; use --output or redirect stdout")
			}
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(convertOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	},
}

var processMarkdownCmd = &cobra.Command{
	Use:   "process-markdown",
	Short: "Clean OCR markdown and print or save the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(convertInput)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		text := string(data)
		if convertClean {
			text = ocrpdf.CleanPlain(text)
		} else {
			text = ocrpdf.Clean(text)
		}
		return writeMarkdown(convertOutput, text)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{markdownToPDFCmd, processMarkdownCmd} {
		cmd.Flags().StringVarP(&convertInput, "input", "i", "", "input markdown file")
		cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (default: stdout)")
		_ = cmd.MarkFlagRequired("input")
	}
	markdownToPDFCmd.Flags().BoolVar(&convertCoordinates, "use-coordinates", false, "reconstruct layout from bounding boxes")
	processMarkdownCmd.Flags().BoolVar(&convertClean, "clean", false, "also strip coordinates and pagination markers")
}
