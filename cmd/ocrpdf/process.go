package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkt.systems/ocrpdf/ocr"
)

var (
	processInput       string
	processOutput      string
	processModel       string
	processPrompt      string
	processCoordinates bool
	processJoinImages  bool
	processTempDir     string
	processUseNative   bool
)

var processImageCmd = &cobra.Command{
	Use:   "process-image",
	Short: "OCR a single image file to markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(processInput)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		client := newOCRClient(processModel)
		markdown, err := client.ProcessImage(cmd.Context(), filepath.Base(processInput), data, ocr.Options{
			CustomPrompt:   processPrompt,
			UseCoordinates: processCoordinates,
		})
		if err != nil {
			return err
		}
		return writeMarkdown(processOutput, markdown)
	},
}

var processDirCmd = &cobra.Command{
	Use:   "process-dir",
	Short: "OCR every image in a directory to combined markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newProcessor(processModel)
		opts := ocr.Options{
			CustomPrompt:   processPrompt,
			UseCoordinates: processCoordinates,
		}

		var markdown string
		var err error
		if processJoinImages {
			markdown, err = p.ProcessDirJoined(cmd.Context(), processInput, opts)
		} else {
			markdown, err = p.ProcessDir(cmd.Context(), processInput, opts)
		}
		if err != nil {
			return err
		}
		return writeMarkdown(processOutput, markdown)
	},
}

var processPDFCmd = &cobra.Command{
	Use:   "process-pdf",
	Short: "Rasterize a PDF and OCR its pages to markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newProcessor("")
		markdown, err := p.ProcessPDF(cmd.Context(), processInput, processTempDir, viper.GetInt("dpi"), processUseNative)
		if err != nil {
			return err
		}
		return writeMarkdown(processOutput, markdown)
	},
}

// writeMarkdown writes markdown to path, or stdout when path is empty.
func writeMarkdown(path, markdown string) error {
	if path == "" {
		fmt.Println(markdown)
		return nil
	}
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{processImageCmd, processDirCmd, processPDFCmd} {
		cmd.Flags().StringVarP(&processInput, "input", "i", "", "input path")
		cmd.Flags().StringVarP(&processOutput, "output", "o", "", "output markdown file (default: stdout)")
		_ = cmd.MarkFlagRequired("input")
	}
	for _, cmd := range []*cobra.Command{processImageCmd, processDirCmd} {
		cmd.Flags().StringVarP(&processModel, "model", "m", "", "OCR model to use")
		cmd.Flags().StringVar(&processPrompt, "custom-prompt", "", "custom prompt for the OCR model")
		cmd.Flags().BoolVar(&processCoordinates, "use-coordinates", false, "ask the model for bounding boxes")
	}
	processDirCmd.Flags().BoolVar(&processJoinImages, "join-images", false, "join all images into one before OCR (experimental)")
	processPDFCmd.Flags().StringVarP(&processTempDir, "temp-dir", "t", "temp_images", "directory for rasterized pages")
	processPDFCmd.Flags().BoolVar(&processUseNative, "use-native", false, "fall back to native text extraction when pdftoppm is missing")
}
