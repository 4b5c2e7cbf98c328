package cli

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/VillePajala/linkedin-post-generator/internal/config"
	"github.com/VillePajala/linkedin-post-generator/internal/contexts"
	"github.com/VillePajala/linkedin-post-generator/internal/insights"
	"github.com/VillePajala/linkedin-post-generator/internal/llm"
	"github.com/VillePajala/linkedin-post-generator/internal/posts"
	"github.com/VillePajala/linkedin-post-generator/internal/prompt"
	"github.com/VillePajala/linkedin-post-generator/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate LinkedIn post drafts",
		Long:  "Build a prompt from your style guide plus either --topic/--goal (manual mode) or a stored --context, run the external AI CLI, and save the draft.",
		Run:   runGenerate,
	}

	cmd.Flags().String("topic", "", "Topic for the post (manual mode)")
	cmd.Flags().String("goal", "", "Goal of the post (manual mode)")
	cmd.Flags().String("context", "", "Generate from a stored context instead")
	cmd.Flags().Int("variants", 1, "Number of A/B variants to generate (1-5)")
	cmd.Flags().Bool("update-context", false, "Record the covered angle in the context (context mode)")
	cmd.Flags().String("angle-summary", "", "Brief description of the angle covered (with --update-context)")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	topic, _ := cmd.Flags().GetString("topic")
	goal, _ := cmd.Flags().GetString("goal")
	contextName, _ := cmd.Flags().GetString("context")
	variants, _ := cmd.Flags().GetInt("variants")
	updateContext, _ := cmd.Flags().GetBool("update-context")
	angleSummary, _ := cmd.Flags().GetString("angle-summary")

	manual := contextName == ""
	if manual && (topic == "" || goal == "") {
		exitErr("generate", fmt.Errorf("manual mode requires both --topic and --goal (or use --context)"))
	}
	if !manual && (topic != "" || goal != "") {
		exitErr("generate", fmt.Errorf("--context cannot be combined with --topic/--goal"))
	}
	if variants < 1 || variants > 5 {
		exitErr("generate", fmt.Errorf("--variants must be between 1 and 5"))
	}

	cfg := loadConfig()
	styleGuide := loadStyleGuide(cfg)

	// Performance hints need a few analyzable posts; silently absent otherwise.
	analyzable, err := posts.LoadAnalyzable(resolvePath(cfg.Paths.Examples), log)
	if err != nil {
		analyzable = nil
	}
	summary := insights.Summarize(analyzable)
	if summary != nil {
		fmt.Println("Using performance insights from your past posts")
		if summary.BestTime != "" {
			fmt.Printf("   Best posting time: %s\n", summary.BestTime)
		}
		if summary.BestDay != "" {
			fmt.Printf("   Best posting day: %s\n", summary.BestDay)
		}
		fmt.Println()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	inspirations := prompt.LoadInspirations(resolvePath(cfg.Paths.Inspiration), 3, rng)
	if len(inspirations) > 0 {
		fmt.Printf("Found %d inspiration notes:\n", len(inspirations))
		for _, n := range inspirations {
			fmt.Printf("   - %s: %s\n", n.File, preview(n.Content, 60))
		}
		fmt.Println()
	}

	var identifier string
	var mode string
	var topicContext *contexts.Context
	if manual {
		mode = store.ModeManual
		identifier = sanitizeIdentifier(topic)
		fmt.Printf("Mode: Manual\nTopic: %s\nGoal: %s\n", topic, goal)
	} else {
		mode = store.ModeContext
		identifier = contextName
		topicContext, err = contextStore(cfg).Load(contextName)
		if err != nil {
			exitErr("load context", err)
		}
		fmt.Printf("Mode: Auto (Context)\nContext: %s\n", contextName)
	}

	variantStyles := make([]prompt.Variant, variants)
	if variants > 1 {
		fmt.Printf("\nA/B Testing Mode: Generating %d variants\n", variants)
		copy(variantStyles, prompt.Variants()[:variants])
	}

	runner := &llm.Runner{Command: cfg.ClaudeCLICommand}
	history, err := openHistory()
	if err != nil {
		exitErr("open history", err)
	}
	defer history.Close()

	type draft struct {
		variant string
		text    string
		path    string
	}
	var drafts []draft

	for i, variant := range variantStyles {
		if variants > 1 {
			fmt.Printf("\n%s\nGENERATING VARIANT %d: %s\n%s\n", ruler, i+1, variant.Name, ruler)
		}

		var p string
		if manual {
			p = prompt.Manual(prompt.ManualParams{
				StyleGuide:     styleGuide,
				Topic:          topic,
				Goal:           goal,
				TargetAudience: cfg.Defaults.TargetAudience,
				Tone:           cfg.Defaults.ToneGuidance,
				MaxLength:      cfg.Defaults.MaxLength,
				Summary:        summary,
				Inspirations:   inspirations,
				VariantStyle:   variant.Description,
			})
		} else {
			p = prompt.FromContext(prompt.ContextParams{
				StyleGuide:     styleGuide,
				Context:        topicContext,
				TargetAudience: cfg.Defaults.TargetAudience,
				MaxLength:      cfg.Defaults.MaxLength,
				Inspirations:   inspirations,
				VariantStyle:   variant.Description,
			})
		}

		fmt.Println("\nGenerating post...")
		text, err := runner.Generate(cmd.Context(), p)
		if err != nil {
			exitErr("generate", err)
		}

		name := identifier
		if variants > 1 {
			name = fmt.Sprintf("%s_variant%d", identifier, i+1)
		}
		path := saveDraft(cfg, mode, name, text)
		fmt.Printf("\n✓ Draft saved to: %s\n", path)

		variantName := variant.Name
		if variantName == "" {
			variantName = "Standard"
		}
		if _, err := history.Record(cmd.Context(), store.Run{
			Mode:       mode,
			Identifier: identifier,
			Variant:    variantName,
			DraftPath:  path,
		}); err != nil {
			log.WithError(err).Warn("could not record run")
		}

		drafts = append(drafts, draft{variant: variantName, text: text, path: path})
	}

	if !manual && updateContext {
		if angleSummary == "" {
			fmt.Println("\nWarning: --angle-summary required to update context")
		} else {
			topicContext.AddAngle(angleSummary, time.Now())
			if err := contextStore(cfg).Save(contextName, topicContext); err != nil {
				exitErr("update context", err)
			}
			fmt.Println("✓ Context updated with new angle")
		}
	}

	fmt.Println("\n" + ruler)
	if variants > 1 {
		fmt.Println("GENERATED VARIANTS:")
	} else {
		fmt.Println("GENERATED DRAFT:")
	}
	fmt.Println(ruler)
	for i, d := range drafts {
		if variants > 1 {
			fmt.Printf("\nVARIANT %d: %s\n%s\n", i+1, d.variant, ruler)
		}
		fmt.Println(d.text)
	}
	fmt.Println(ruler)

	if summary != nil && summary.BestDay != "" && summary.BestTime != "" {
		fmt.Printf("\nPOSTING RECOMMENDATION: %s at %s\n", summary.BestDay, summary.BestTime)
	}
	fmt.Println("\n✓ Generation complete!")
}

func loadStyleGuide(cfg *config.Config) string {
	path := resolvePath(cfg.Paths.StyleGuide)
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr("load style guide", fmt.Errorf("%s not found; run 'postgen style' first", path))
	}
	return string(data)
}

func saveDraft(cfg *config.Config, mode, identifier, content string) string {
	outDir := resolvePath(cfg.Paths.Output)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		exitErr("create output dir", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("draft_%s_%s_%s.md", mode, identifier, timestamp)
	path := filepath.Join(outDir, name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		exitErr("write draft", err)
	}
	return path
}

// sanitizeIdentifier turns a free-form topic into a short filename part.
func sanitizeIdentifier(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > 30 {
		s = s[:30]
	}
	return s
}

func preview(s string, max int) string {
	r := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(r) > max {
		return string(r[:max]) + "..."
	}
	return string(r)
}
