package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VillePajala/linkedin-post-generator/internal/llm"
	"github.com/VillePajala/linkedin-post-generator/internal/posts"
	"github.com/VillePajala/linkedin-post-generator/internal/prompt"
	"github.com/VillePajala/linkedin-post-generator/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Distill a style guide from your example posts",
		Long:  "Send every example post (.txt, .md and JSON records) to the external AI CLI and save the returned style guide.",
		Run:   runStyle,
	}

	RootCmd.AddCommand(cmd)
}

func runStyle(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	dir := resolvePath(cfg.Paths.Examples)

	examples, withData := loadExampleTexts(dir)
	if len(examples) == 0 {
		exitErr("style", fmt.Errorf("no example posts found in %s (add .txt, .md or .json files)", dir))
	}
	fmt.Printf("Loaded %d example posts (%d with engagement data)\n", len(examples), withData)

	p := prompt.StyleAnalysis(examples)
	fmt.Printf("\nAnalyzing style (%d characters sent to %s)...\n", len(p), cfg.ClaudeCLICommand)

	runner := &llm.Runner{Command: cfg.ClaudeCLICommand}
	guide, err := runner.Generate(cmd.Context(), p)
	if err != nil {
		exitErr("generate style guide", err)
	}

	guidePath := resolvePath(cfg.Paths.StyleGuide)
	if err := os.MkdirAll(filepath.Dir(guidePath), 0o755); err != nil {
		exitErr("create style guide dir", err)
	}
	if err := os.WriteFile(guidePath, []byte(guide), 0o644); err != nil {
		exitErr("write style guide", err)
	}
	fmt.Printf("\n✓ Style guide saved to: %s\n", guidePath)

	if h, err := openHistory(); err == nil {
		defer h.Close()
		if _, err := h.Record(cmd.Context(), store.Run{Mode: store.ModeStyle, Identifier: "style-guide", DraftPath: guidePath}); err != nil {
			log.WithError(err).Warn("could not record run")
		}
	}

	fmt.Println("\n✓ Style analysis complete!")
	fmt.Println("You can now use 'postgen generate' to create posts matching your style")
}

// loadExampleTexts collects post texts from .txt/.md files and JSON
// records. It also reports how many came with engagement data.
func loadExampleTexts(dir string) (texts []string, withData int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0
	}

	for _, e := range entries {
		name := strings.ToLower(e.Name())
		if e.IsDir() || (!strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".md")) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		if content := strings.TrimSpace(string(data)); content != "" {
			texts = append(texts, content)
		}
	}

	records, err := posts.Load(dir, log)
	if err != nil {
		return texts, 0
	}
	for _, p := range records {
		if strings.TrimSpace(p.Content) == "" {
			continue
		}
		texts = append(texts, strings.TrimSpace(p.Content))
		if p.Analyzable() {
			withData++
		}
	}

	return texts, withData
}
