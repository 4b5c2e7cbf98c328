// Package llm invokes the external generator CLI.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes the configured generator command. The contract is
// simple: prompt on stdin, generated text on stdout, non-zero exit is
// fatal for the run.
type Runner struct {
	Command string
}

// Generate sends the prompt and returns the trimmed output. On failure
// the tool's own stderr is surfaced verbatim in the error.
func (r *Runner) Generate(ctx context.Context, prompt string) (string, error) {
	if r.Command == "" {
		return "", fmt.Errorf("generator command is not configured")
	}

	cmd := exec.CommandContext(ctx, r.Command)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w\n%s", r.Command, err, msg)
		}
		return "", fmt.Errorf("%s: %w", r.Command, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
