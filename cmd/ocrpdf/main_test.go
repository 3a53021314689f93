package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := writeMarkdown(path, "# hello"); err != nil {
		t.Fatalf("writeMarkdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "# hello" {
		t.Fatalf("content = %q", data)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{
		"process-image",
		"process-dir",
		"process-pdf",
		"markdown-to-pdf",
		"process-markdown",
		"version",
	}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
