// Package prompt assembles the text prompts handed to the external
// generator. All builders are pure string construction: optional
// sections are omitted entirely when their inputs are absent, so the
// output never carries a header with an empty body.
package prompt

import (
	"fmt"
	"strings"

	"github.com/VillePajala/linkedin-post-generator/internal/contexts"
	"github.com/VillePajala/linkedin-post-generator/internal/insights"
)

// Inspiration is one note offered to the generator as creative fuel.
type Inspiration struct {
	File    string
	Content string
}

// ManualParams are the inputs for a topic/goal prompt.
type ManualParams struct {
	StyleGuide     string
	Topic          string
	Goal           string
	TargetAudience string
	Tone           string
	MaxLength      int
	Summary        *insights.Summary
	Inspirations   []Inspiration
	VariantStyle   string
}

// ContextParams are the inputs for a stored-context prompt.
type ContextParams struct {
	StyleGuide     string
	Context        *contexts.Context
	TargetAudience string // fallback when the context has none
	MaxLength      int
	Inspirations   []Inspiration
	VariantStyle   string
}

const header = "You are a LinkedIn post writer. Your task is to write a post that EXACTLY matches the following style guide.\n\nSTYLE GUIDE TO FOLLOW:\n"

const outputFormat = `

Format your output as:
[POST CONTENT]

---IMAGE SUGGESTION---
[Brief description of what image/visual would work well with this post]`

// Manual builds the prompt for manual mode.
func Manual(p ManualParams) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(p.StyleGuide)

	fmt.Fprintf(&b, `

POST REQUIREMENTS:
- Topic: %s
- Goal: %s
- Target Audience: %s
- Tone: %s
- Maximum Length: %d characters`, p.Topic, p.Goal, p.TargetAudience, p.Tone, p.MaxLength)

	writeInspirations(&b, "INSPIRATION NOTES (use these as creative fuel, not direct content):", p.Inspirations)
	writeVariant(&b, p.VariantStyle)

	if p.Summary != nil {
		fmt.Fprintf(&b, `

PERFORMANCE OPTIMIZATION (based on your top-performing posts):
- Target Length: ~%d characters`, p.Summary.AvgLength)

		if len(p.Summary.CommonFormats) > 0 {
			fmt.Fprintf(&b, "\n- Consider using: %s", strings.Join(p.Summary.CommonFormats, ", "))
		}

		b.WriteString(`

LINKEDIN ALGORITHM OPTIMIZATION:
- Create a strong hook in the first 2 lines (crucial for dwell time)
- Aim for engagement in the first hour (reactions/comments boost visibility)
- End with a question or call-to-action to encourage comments
- Keep paragraphs short for mobile readability
- Avoid external links in the post itself (add in first comment if needed)`)
	}

	b.WriteString(`

Write a LinkedIn post draft that matches the style guide precisely. The post should feel authentic and natural, as if written by the person whose style you're emulating.

After the post content, add a separator line and suggest an image that would complement the post.`)
	b.WriteString(outputFormat)

	return b.String()
}

// FromContext builds the prompt for auto mode, steering the generator
// away from recently covered angles.
func FromContext(p ContextParams) string {
	c := p.Context
	audience := c.TargetAudience
	if audience == "" {
		audience = p.TargetAudience
	}

	recent := "None yet"
	if len(c.RecentAngles) > 0 {
		recent = bulleted(c.RecentAngles)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(p.StyleGuide)

	fmt.Fprintf(&b, `

BROADER TOPIC CONTEXT:
Topic: %s
Target Audience: %s

Key Themes to Draw From:
%s

Key Messages to Convey:
%s

Recently Covered Angles (DO NOT REPEAT):
%s`, c.Topic, audience, bulleted(c.Themes), bulleted(c.KeyMessages), recent)

	writeInspirations(&b, "INSPIRATION NOTES (recent observations and ideas - use as creative fuel):", p.Inspirations)
	writeVariant(&b, p.VariantStyle)

	fmt.Fprintf(&b, `

POST REQUIREMENTS:
- Choose a FRESH angle or theme from the list above that hasn't been recently covered
- Maximum Length: %d characters
- Match the style guide precisely
- Keep the post authentic and natural

Write a LinkedIn post draft that explores a new angle within this topic.

After the post content, add a separator line and suggest an image that would complement the post.`, p.MaxLength)
	b.WriteString(outputFormat)

	return b.String()
}

// StyleAnalysis builds the prompt that asks the generator to distill a
// style guide from example posts.
func StyleAnalysis(posts []string) string {
	combined := strings.Join(posts, "\n\n---POST SEPARATOR---\n\n")

	return fmt.Sprintf(`Analyze these LinkedIn posts and create a detailed style guide that captures the author's writing style.

EXAMPLE POSTS:
%s

Please analyze and document:
1. **Tone & Voice**: Is it professional, casual, personal, authoritative, conversational?
2. **Structure Patterns**: How do posts typically open? How do they close? Common section patterns?
3. **Sentence Style**: Short and punchy? Long and flowing? Mix of both? Use of questions?
4. **Formatting**: Use of emojis, bullet points, numbered lists, line breaks, capitalization
5. **Content Approach**: Storytelling, data-driven, opinion-based, educational, provocative?
6. **Typical Length**: Character/word count range
7. **Engagement Tactics**: How does the author encourage interaction? Calls to action?
8. **Unique Quirks**: Any distinctive patterns or signature elements?

Output this as a clear, actionable style guide that can be used to generate new posts that match this exact style.`, combined)
}

func writeInspirations(b *strings.Builder, heading string, notes []Inspiration) {
	if len(notes) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(heading)
	for _, n := range notes {
		b.WriteString("\n- ")
		b.WriteString(n.Content)
	}
}

func writeVariant(b *strings.Builder, style string) {
	if style == "" {
		return
	}
	b.WriteString("\n\nVARIANT STYLE (create a unique approach for this variant):\n")
	b.WriteString(style)
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}
