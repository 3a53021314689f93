package ocr

import "strings"

// buildPrompt assembles the instruction text for one request. The
// grounding tag asks DeepSeek-OCR style models for layout-aware output;
// Ollama-served models additionally get explicit output instructions
// since they tend to chat around the result.
func buildPrompt(model, name string, opts Options) string {
	var b strings.Builder

	if opts.Joined {
		b.WriteString("Combined document with multiple pages. <|grounding|>")
		if opts.CustomPrompt != "" {
			b.WriteString(opts.CustomPrompt)
		} else {
			b.WriteString("Convert the entire document to markdown, preserving the structure and content from all pages.")
		}
	} else {
		b.WriteString(name)
		b.WriteString(" <|grounding|>")
		if opts.CustomPrompt != "" {
			b.WriteString(opts.CustomPrompt)
		} else {
			b.WriteString("Convert the document to markdown.")
		}
	}

	if IsOllamaModel(model) {
		b.WriteString("\n\nIMPORTANT INSTRUCTIONS:")
		if opts.Joined {
			b.WriteString("\n- Extract all text from this image. Present the extracted text in a structured format, preserving all line breaks and original spacing. Do not interpret or summarize the content; provide the raw text as precisely as possible.")
		} else {
			b.WriteString("\n- Return ONLY the OCR result. No thinking, explanations, or markdown code blocks.")
		}
		b.WriteString("\n- Fix grammar mistakes when confident.")
		if opts.UseCoordinates {
			b.WriteString("\n- Include coordinate information for text positioning.")
		}
	}

	return b.String()
}
