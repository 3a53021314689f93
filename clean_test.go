package ocrpdf

import (
	"strings"
	"testing"
)

const rawOCR = `<|grounding|>detected 12 regions
<|det|>[[100,200,500,260]]<|/det|>
# Title

<|ref|>figure 1<|/ref|>
Body paragraph text.



---PAGE_BREAK---

---IMAGE_INDEX:1---
More text.`

func TestClean(t *testing.T) {
	got := Clean(rawOCR)

	if strings.Contains(got, "<|grounding|>") {
		t.Errorf("grounding line survived: %q", got)
	}
	if strings.Contains(got, "<|ref|>") {
		t.Errorf("ref span survived: %q", got)
	}
	if !strings.Contains(got, "<|det|>[[100,200,500,260]]<|/det|>") {
		t.Errorf("det tags must survive Clean: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank run survived: %q", got)
	}
	if strings.Contains(got, "---PAGE_BREAK---") || strings.Contains(got, "---IMAGE_INDEX") {
		t.Errorf("sentinel survived: %q", got)
	}
}

func TestCleanPlain(t *testing.T) {
	got := CleanPlain(rawOCR)

	if strings.Contains(got, "<|") {
		t.Errorf("control tag survived: %q", got)
	}
	if strings.Contains(got, "---PAGE_BREAK---") || strings.Contains(got, "---IMAGE_INDEX") {
		t.Errorf("sentinel survived: %q", got)
	}
	if !strings.Contains(got, "# Title") || !strings.Contains(got, "Body paragraph text.") {
		t.Errorf("content lost: %q", got)
	}
}

func TestCleanPlainIdempotent(t *testing.T) {
	once := CleanPlain(rawOCR)
	twice := CleanPlain(once)
	if once != twice {
		t.Fatalf("CleanPlain not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestCleanEmpty(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Fatalf("Clean(\"\") = %q", got)
	}
	if got := CleanPlain("   \n\t\n"); got != "" {
		t.Fatalf("CleanPlain(whitespace) = %q", got)
	}
}
