package prompt

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VillePajala/linkedin-post-generator/internal/contexts"
	"github.com/VillePajala/linkedin-post-generator/internal/insights"
)

func baseManual() ManualParams {
	return ManualParams{
		StyleGuide:     "Write short and punchy.",
		Topic:          "AI tooling",
		Goal:           "start a discussion",
		TargetAudience: "engineers",
		Tone:           "casual",
		MaxLength:      1500,
	}
}

func TestManualMinimal(t *testing.T) {
	out := Manual(baseManual())

	assert.Contains(t, out, "STYLE GUIDE TO FOLLOW:\nWrite short and punchy.")
	assert.Contains(t, out, "- Topic: AI tooling")
	assert.Contains(t, out, "- Goal: start a discussion")
	assert.Contains(t, out, "- Maximum Length: 1500 characters")
	assert.Contains(t, out, "---IMAGE SUGGESTION---")

	// Optional sections absent, including their headers.
	assert.NotContains(t, out, "INSPIRATION NOTES")
	assert.NotContains(t, out, "VARIANT STYLE")
	assert.NotContains(t, out, "PERFORMANCE OPTIMIZATION")
	assert.NotContains(t, out, "LINKEDIN ALGORITHM OPTIMIZATION")
}

func TestManualWithAllSections(t *testing.T) {
	p := baseManual()
	p.Summary = &insights.Summary{AvgLength: 900, CommonFormats: []string{"lists", "questions"}}
	p.Inspirations = []Inspiration{{File: "note.txt", Content: "observed a thing"}}
	p.VariantStyle = "OPENING: bold claim"

	out := Manual(p)
	assert.Contains(t, out, "INSPIRATION NOTES (use these as creative fuel, not direct content):\n- observed a thing")
	assert.Contains(t, out, "VARIANT STYLE (create a unique approach for this variant):\nOPENING: bold claim")
	assert.Contains(t, out, "Target Length: ~900 characters")
	assert.Contains(t, out, "Consider using: lists, questions")
	assert.Contains(t, out, "LINKEDIN ALGORITHM OPTIMIZATION")
}

func TestManualSummaryWithoutFormats(t *testing.T) {
	p := baseManual()
	p.Summary = &insights.Summary{AvgLength: 700}

	out := Manual(p)
	assert.Contains(t, out, "Target Length: ~700 characters")
	assert.NotContains(t, out, "Consider using:")
}

func TestFromContextSections(t *testing.T) {
	out := FromContext(ContextParams{
		StyleGuide: "guide",
		Context: &contexts.Context{
			Topic:          "Remote work",
			TargetAudience: "founders",
			Themes:         []string{"async", "trust"},
			KeyMessages:    []string{"output over hours"},
			RecentAngles:   []string{"2025-09-01: async rituals"},
		},
		TargetAudience: "fallback audience",
		MaxLength:      2000,
	})

	assert.Contains(t, out, "Topic: Remote work")
	assert.Contains(t, out, "Target Audience: founders")
	assert.Contains(t, out, "- async\n- trust")
	assert.Contains(t, out, "- output over hours")
	assert.Contains(t, out, "Recently Covered Angles (DO NOT REPEAT):\n- 2025-09-01: async rituals")
	assert.Contains(t, out, "Choose a FRESH angle")
	assert.Contains(t, out, "---IMAGE SUGGESTION---")
}

func TestFromContextFallbacks(t *testing.T) {
	out := FromContext(ContextParams{
		StyleGuide:     "guide",
		Context:        &contexts.Context{Topic: "X"},
		TargetAudience: "fallback audience",
		MaxLength:      2000,
	})

	assert.Contains(t, out, "Target Audience: fallback audience")
	assert.Contains(t, out, "Recently Covered Angles (DO NOT REPEAT):\nNone yet")
}

func TestStyleAnalysisSeparator(t *testing.T) {
	out := StyleAnalysis([]string{"post one", "post two"})

	assert.Contains(t, out, "post one\n\n---POST SEPARATOR---\n\npost two")
	assert.Contains(t, out, "**Tone & Voice**")
	assert.True(t, strings.HasPrefix(out, "Analyze these LinkedIn posts"))
}

func TestLoadInspirations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("idea a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("idea b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a note"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("   "), 0o644))

	rng := rand.New(rand.NewSource(1))
	notes := LoadInspirations(dir, 10, rng)

	var contents []string
	for _, n := range notes {
		contents = append(contents, n.Content)
	}
	assert.ElementsMatch(t, []string{"idea a", "idea b"}, contents)
}

func TestLoadInspirationsLimit(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("note "+name), 0o644))
	}

	rng := rand.New(rand.NewSource(1))
	notes := LoadInspirations(dir, 3, rng)
	assert.Len(t, notes, 3)
}

func TestLoadInspirationsMissingDir(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, LoadInspirations(filepath.Join(t.TempDir(), "nope"), 3, rng))
}
