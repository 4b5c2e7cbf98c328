package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VillePajala/linkedin-post-generator/internal/insights"
	"github.com/VillePajala/linkedin-post-generator/internal/model"
	"github.com/VillePajala/linkedin-post-generator/internal/posts"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze what drives engagement in your posts",
		Long:  "Compute engagement statistics over the JSON post records: best days and times, length and format breakdowns, top performers and recommendations.",
		Run:   runAnalyze,
	}

	RootCmd.AddCommand(cmd)
}

const ruler = "============================================================"

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	all, err := posts.LoadAnalyzable(resolvePath(cfg.Paths.Examples), log)
	if err != nil {
		exitErr("load posts", err)
	}
	if len(all) == 0 {
		exitErr("analyze", fmt.Errorf("no JSON files with engagement data found in %s", resolvePath(cfg.Paths.Examples)))
	}

	fmt.Printf("Loaded %d posts with engagement data\n\n", len(all))
	if len(all) < 5 {
		fmt.Println("Warning: fewer than 5 posts with engagement data; add more for accurate analysis.")
		fmt.Println()
	}

	rated := insights.RateAll(all)

	printTiming(rated)
	printCharacteristics(rated)
	printTopPerformers(rated)
	printContentPatterns(rated)
	printRecommendations(all)

	fmt.Println("✓ Performance analysis complete!")
	fmt.Println()
	fmt.Println("Use these insights when generating new posts with:")
	fmt.Println("  postgen generate --topic 'your topic' --goal 'your goal'")
}

func printTiming(rated []insights.Rated) {
	fmt.Println("TIMING ANALYSIS")
	fmt.Println(ruler)

	if days := insights.ByDay(rated); len(days) > 0 {
		fmt.Println("\nBest Days to Post:")
		for _, b := range top(days, 3) {
			fmt.Printf("  %-10s - Avg Engagement: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
		}
	}

	if hours := insights.ByHour(rated); len(hours) > 0 {
		fmt.Println("\nBest Times to Post:")
		for _, b := range top(hours, 5) {
			fmt.Printf("  %s - Avg Engagement: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
		}
	}

	fmt.Println()
}

func printCharacteristics(rated []insights.Rated) {
	fmt.Println("POST CHARACTERISTICS ANALYSIS")
	fmt.Println(ruler)

	fmt.Println("\nEngagement by Post Length:")
	for _, b := range insights.ByLength(rated) {
		fmt.Printf("  %-30s - Avg: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
	}

	if formats := insights.ByFormat(rated); len(formats) > 0 {
		fmt.Println("\nEngagement by Format Elements:")
		for _, b := range formats {
			fmt.Printf("  %-15s - Avg: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
		}
	}

	fmt.Println("\nEngagement by Post Type:")
	for _, b := range insights.ByType(rated) {
		fmt.Printf("  %-15s - Avg: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
	}

	fmt.Println()
}

func printTopPerformers(rated []insights.Rated) {
	fmt.Println("TOP PERFORMING POSTS")
	fmt.Println(ruler)

	sorted := make([]insights.Rated, len(rated))
	copy(sorted, rated)
	insights.SortByRate(sorted)
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	fmt.Println("\nTop 5 Posts by Engagement Rate:")
	for i, r := range sorted {
		p := r.Post
		preview := strings.ReplaceAll(p.Content, "\n", " ")
		if len([]rune(preview)) > 80 {
			preview = string([]rune(preview)[:80])
		}

		fmt.Printf("\n%d. Engagement Rate: %.2f%%\n", i+1, r.Rate)
		fmt.Printf("   Impressions: %d\n", p.Engagement.Impressions)
		fmt.Printf("   Reactions: %d, Comments: %d, Shares: %d\n",
			p.Engagement.Reactions, p.Engagement.Comments, p.Engagement.Shares)
		fmt.Printf("   Preview: %q\n", preview+"...")

		if traits := traitList(&p.Characteristics); len(traits) > 0 {
			fmt.Printf("   Characteristics: %s\n", strings.Join(traits, ", "))
		}
		fmt.Printf("   Topic: %s | Goal: %s\n", orNA(p.Context.Topic), orNA(p.Context.Goal))
	}

	fmt.Println()
}

func printContentPatterns(rated []insights.Rated) {
	fmt.Println("CONTENT PATTERN ANALYSIS")
	fmt.Println(ruler)

	fmt.Println("\nEngagement by Topic:")
	for _, b := range top(insights.ByTopic(rated), 5) {
		fmt.Printf("  %-25s - Avg: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
	}

	fmt.Println("\nEngagement by Goal:")
	for _, b := range insights.ByGoal(rated) {
		fmt.Printf("  %-25s - Avg: %.2f%% (%d posts)\n", b.Label, b.AvgRate, b.Count)
	}

	topQ := insights.TopQuartile(rated)

	fmt.Println("\nTop Performing Topics:")
	topics := insights.CountLabels(topQ, func(p *model.Post) string { return p.Context.Topic })
	for _, b := range top(topics, 5) {
		fmt.Printf("  - %s (%d posts)\n", b.Label, b.Count)
	}

	fmt.Println("\nTop Performing Goals:")
	goals := insights.CountLabels(topQ, func(p *model.Post) string { return p.Context.Goal })
	for _, b := range goals {
		fmt.Printf("  - %s (%d posts)\n", b.Label, b.Count)
	}

	bottomQ := insights.BottomQuartile(rated)
	fmt.Println("\nTopics to Reconsider (bottom quartile):")
	weak := insights.CountLabels(bottomQ, func(p *model.Post) string { return p.Context.Topic })
	for _, b := range top(weak, 3) {
		fmt.Printf("  - %s (%d posts)\n", b.Label, b.Count)
	}

	fmt.Println()
}

func printRecommendations(all []*model.Post) {
	fmt.Println("RECOMMENDATIONS")
	fmt.Println(ruler)

	summary := insights.Summarize(all)
	if summary == nil {
		fmt.Println("\nNot enough posts yet for recommendations (need at least 3).")
		fmt.Println()
		return
	}

	fmt.Println("\nBased on your top performing posts:")
	fmt.Printf("\n1. Optimal Post Length: ~%d characters\n", summary.AvgLength)

	if len(summary.CommonFormats) > 0 {
		fmt.Println("\n2. Effective Format Elements:")
		for _, f := range summary.CommonFormats {
			fmt.Printf("   - %s: used in at least half of your top posts\n", f)
		}
	}

	if summary.BestTime != "" {
		fmt.Printf("\n3. Best Posting Time: Around %s\n", summary.BestTime)
	}
	if summary.BestDay != "" {
		fmt.Printf("\n4. Best Posting Day: %s\n", summary.BestDay)
	}

	fmt.Println("\n5. LinkedIn Algorithm Optimization:")
	fmt.Println("   - Aim for quick engagement in the first hour (crucial for reach)")
	fmt.Println("   - Use engaging hooks to increase dwell time")
	fmt.Println("   - End with questions to encourage comments")
	fmt.Println("   - Avoid external links in first comment (post them later)")

	fmt.Println()
}

func top(buckets []insights.Bucket, n int) []insights.Bucket {
	if len(buckets) > n {
		return buckets[:n]
	}
	return buckets
}

func traitList(c *model.Characteristics) []string {
	var traits []string
	if c.HasImage {
		traits = append(traits, "image")
	}
	if c.HasVideo {
		traits = append(traits, "video")
	}
	if c.HasList {
		traits = append(traits, "list")
	}
	if c.HasQuestion {
		traits = append(traits, "question")
	}
	if c.HasHashtags {
		traits = append(traits, "hashtags")
	}
	return traits
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
