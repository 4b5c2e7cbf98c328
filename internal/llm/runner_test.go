package llm

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGenerateEchoesStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on cat")
	}

	r := &Runner{Command: "cat"}
	out, err := r.Generate(context.Background(), "hello generator\n")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "hello generator" {
		t.Errorf("expected trimmed echo, got %q", out)
	}
}

func TestGenerateNonZeroExitIsFatal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	script := filepath.Join(t.TempDir(), "fail.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho boom >&2\nexit 3\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := &Runner{Command: script}
	_, err := r.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error from non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected stderr surfaced verbatim, got %v", err)
	}
}

func TestGenerateMissingCommand(t *testing.T) {
	r := &Runner{Command: "definitely-not-a-real-binary-xyz"}
	if _, err := r.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for missing command")
	}
}

func TestGenerateUnconfigured(t *testing.T) {
	r := &Runner{}
	if _, err := r.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error when command is not configured")
	}
}
