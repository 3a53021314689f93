package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"pkt.systems/ocrpdf"
)

const (
	// DefaultModel is the vision model used when none is configured.
	DefaultModel = "NexaAI/DeepSeek-OCR-GGUF:BF16"
	// DefaultNexaURL is the local Nexa chat completion endpoint.
	DefaultNexaURL = "http://127.0.0.1:18181/v1/chat/completions"
	// DefaultOllamaURL is the local Ollama chat completion endpoint.
	DefaultOllamaURL = "http://127.0.0.1:11434/v1/chat/completions"

	defaultMaxTokens = 16384
	defaultAttempts  = 3
)

// Config configures a Client. Zero values fall back to the defaults
// above; HTTPClient defaults to a client without a timeout since local
// OCR inference on large pages can run for minutes.
type Config struct {
	Model      string
	NexaURL    string
	OllamaURL  string
	MaxTokens  int
	Attempts   uint
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client sends images to an OpenAI-compatible vision endpoint and
// returns cleaned OCR markdown. The endpoint is chosen from the model
// name: Nexa for NexaAI/GGUF models, Ollama for everything else.
type Client struct {
	cfg Config
}

// NewClient returns a Client with cfg defaults applied.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.NexaURL == "" {
		cfg.NexaURL = DefaultNexaURL
	}
	if cfg.OllamaURL == "" {
		cfg.OllamaURL = DefaultOllamaURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Client{cfg: cfg}
}

// IsOllamaModel reports whether model routes to the Ollama endpoint.
func IsOllamaModel(model string) bool {
	return !strings.Contains(model, "NexaAI") && !strings.Contains(model, "GGUF")
}

func (c *Client) endpoint() string {
	if IsOllamaModel(c.cfg.Model) {
		return c.cfg.OllamaURL
	}
	return c.cfg.NexaURL
}

// Options adjust a single OCR request.
type Options struct {
	// CustomPrompt replaces the default conversion instruction.
	CustomPrompt string
	// UseCoordinates asks the model to emit bounding boxes.
	UseCoordinates bool
	// Joined marks the image as a vertical join of several pages.
	Joined bool
}

// ProcessImage sends one image through the OCR model and returns the
// cleaned markdown. name is the source file name, used in the prompt.
func (c *Client) ProcessImage(ctx context.Context, name string, image []byte, opts Options) (string, error) {
	prompt := buildPrompt(c.cfg.Model, name, opts)

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []chatContent{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &chatImageURL{
					URL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		MaxTokens: c.cfg.MaxTokens,
		Stream:    false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ocr: marshal request: %w", err)
	}

	url := c.endpoint()
	c.cfg.Logger.Debug("ocr request", "image", name, "model", c.cfg.Model, "url", url)

	var content string
	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("ocr: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.cfg.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("ocr: send request: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("ocr: read response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("ocr: endpoint %s returned status %d: %s", url, resp.StatusCode, respBody)
		}

		var parsed chatResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return fmt.Errorf("ocr: unmarshal response: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return fmt.Errorf("ocr: response has no choices")
		}
		content = parsed.Choices[0].Message.Content
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(c.cfg.Attempts),
		retry.Delay(1*time.Second),
	)
	if err != nil {
		return "", err
	}

	return ocrpdf.Clean(content), nil
}
