// Package posts reads and writes post record files.
package posts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/VillePajala/linkedin-post-generator/internal/model"
)

// CombinedFile is the sibling file holding the full ordered collection.
const CombinedFile = "all_posts.json"

// Load reads every post record in dir. Files named like templates
// ("*example*") and the combined file are skipped, as is anything that
// fails to parse. Bad files get a warning, never a fatal error.
func Load(dir string, log *logrus.Logger) ([]*model.Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir: %w", err)
	}

	var out []*model.Post
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		if name == CombinedFile || strings.Contains(strings.ToLower(name), "example") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.WithField("file", name).WithError(err).Warn("skipping unreadable post file")
			continue
		}

		var p model.Post
		if err := json.Unmarshal(data, &p); err != nil {
			log.WithField("file", name).WithError(err).Warn("skipping unparsable post file")
			continue
		}
		out = append(out, &p)
	}

	// Directory order is platform-dependent; keep runs deterministic.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Metadata.Date != out[j].Metadata.Date {
			return out[i].Metadata.Date < out[j].Metadata.Date
		}
		return out[i].PostID < out[j].PostID
	})

	return out, nil
}

// LoadAnalyzable returns only the records with content and engagement
// data, the subset the performance analysis runs on.
func LoadAnalyzable(dir string, log *logrus.Logger) ([]*model.Post, error) {
	all, err := Load(dir, log)
	if err != nil {
		return nil, err
	}
	var out []*model.Post
	for _, p := range all {
		if p.Analyzable() {
			out = append(out, p)
		}
	}
	return out, nil
}

// Save writes a single post record as indented JSON.
func Save(path string, p *model.Post) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// SaveAll writes the combined ordered collection next to the per-post files.
func SaveAll(dir string, all []*model.Post) error {
	b, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, CombinedFile), append(b, '\n'), 0o644)
}

// Filename returns the per-post record filename: the date when known
// (post_2025_09_30.json), otherwise the post id.
func Filename(p *model.Post) string {
	if p.Metadata.Date != "" {
		return "post_" + strings.ReplaceAll(p.Metadata.Date, "-", "_") + ".json"
	}
	return "post_" + p.PostID + ".json"
}
