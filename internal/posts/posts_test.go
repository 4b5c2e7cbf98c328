package posts

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VillePajala/linkedin-post-generator/internal/model"
)

func quietLog() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sample() *model.Post {
	return &model.Post{
		PostID:  "123",
		Content: "What did I learn this week?\n\n1. Ship early.",
		Metadata: model.Metadata{
			Date:     "2025-09-30",
			Time:     "06:54",
			Timezone: "EET",
		},
		Engagement: model.Engagement{
			Impressions: 5537,
			Reactions:   42,
			Comments:    7,
			Rate:        0.88,
		},
		Characteristics: model.Characteristics{
			Type:           model.TypeImage,
			HasImage:       true,
			HasList:        true,
			HasQuestion:    true,
			WordCount:      9,
			CharacterCount: 44,
			LineBreaks:     3,
			ImageFiles:     []string{"post_123_image_1.png"},
		},
		Context: model.Context{Topic: "shipping", Goal: "engagement", Tone: "professional"},
		Notes:   "Imported from LinkedIn Analytics Excel export",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := sample()

	require.NoError(t, Save(filepath.Join(dir, Filename(in)), in))

	out, err := Load(dir, quietLog())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in, out[0])
}

func TestLoadSkipsMalformedAndSpecialFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(filepath.Join(dir, "post_1.json"), sample()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post_example.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CombinedFile), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not json at all"), 0o644))

	out, err := Load(dir, quietLog())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestLoadAnalyzableFilters(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(filepath.Join(dir, "post_a.json"), sample()))

	noData := &model.Post{PostID: "b", Content: "words but no numbers"}
	require.NoError(t, Save(filepath.Join(dir, "post_b.json"), noData))

	out, err := LoadAnalyzable(dir, quietLog())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "123", out[0].PostID)
}

func TestLoadOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()

	newer := sample()
	newer.Metadata.Date = "2025-10-02"
	older := sample()
	older.Metadata.Date = "2025-09-01"

	require.NoError(t, Save(filepath.Join(dir, "zzz.json"), older))
	require.NoError(t, Save(filepath.Join(dir, "aaa.json"), newer))

	out, err := Load(dir, quietLog())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-09-01", out[0].Metadata.Date)
	assert.Equal(t, "2025-10-02", out[1].Metadata.Date)
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	all := []*model.Post{sample(), sample()}

	require.NoError(t, SaveAll(dir, all))

	data, err := os.ReadFile(filepath.Join(dir, CombinedFile))
	require.NoError(t, err)

	var decoded []*model.Post
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, all, decoded)
}

func TestFilename(t *testing.T) {
	p := sample()
	assert.Equal(t, "post_2025_09_30.json", Filename(p))

	p.Metadata.Date = ""
	assert.Equal(t, "post_123.json", Filename(p))
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), quietLog())
	assert.Error(t, err)
}
