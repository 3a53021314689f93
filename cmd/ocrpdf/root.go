package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pkt.systems/version"

	"pkt.systems/ocrpdf/ingest"
	"pkt.systems/ocrpdf/ocr"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ocrpdf",
	Short: "OCR documents to markdown and rebuild them as PDFs",
	Long: `ocrpdf runs scanned pages through a local vision OCR model (Nexa or
Ollama), collects the markdown it produces and renders that markdown
back into a paginated PDF, optionally using the bounding boxes the
model emits to reconstruct the original layout.`,
	SilenceUsage: true,
}

func init() {
	version.SetDefaultModule("pkt.systems/ocrpdf")
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.ocrpdf/config.yaml)",
	)

	rootCmd.AddCommand(processImageCmd)
	rootCmd.AddCommand(processDirCmd)
	rootCmd.AddCommand(processPDFCmd)
	rootCmd.AddCommand(markdownToPDFCmd)
	rootCmd.AddCommand(processMarkdownCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	viper.SetDefault("model", ocr.DefaultModel)
	viper.SetDefault("nexa_url", ocr.DefaultNexaURL)
	viper.SetDefault("ollama_url", ocr.DefaultOllamaURL)
	viper.SetDefault("max_tokens", 16384)
	viper.SetDefault("dpi", 300)

	viper.SetEnvPrefix("OCRPDF")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.ocrpdf")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "error reading config file:", err)
			os.Exit(1)
		}
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// newOCRClient builds the OCR client from config, with model overriding
// the configured one when non-empty.
func newOCRClient(model string) *ocr.Client {
	if model == "" {
		model = viper.GetString("model")
	}
	return ocr.NewClient(ocr.Config{
		Model:     model,
		NexaURL:   viper.GetString("nexa_url"),
		OllamaURL: viper.GetString("ollama_url"),
		MaxTokens: viper.GetInt("max_tokens"),
		Logger:    newLogger(),
	})
}

func newProcessor(model string) *ingest.Processor {
	return &ingest.Processor{
		Engine: newOCRClient(model),
		Log:    newLogger(),
	}
}
