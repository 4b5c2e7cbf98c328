package prompt

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// LoadInspirations picks up to max random notes (.txt or .md, README
// excluded) from dir. A missing or empty directory yields nothing, and
// the section is simply left out of the prompt.
func LoadInspirations(dir string, max int, rng *rand.Rand) []Inspiration {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if name == "readme.md" {
			continue
		}
		if strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".md") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil
	}

	rng.Shuffle(len(files), func(i, j int) { files[i], files[j] = files[j], files[i] })
	if len(files) > max {
		files = files[:max]
	}

	var notes []Inspiration
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		content := strings.TrimSpace(string(data))
		if content != "" {
			notes = append(notes, Inspiration{File: name, Content: content})
		}
	}
	return notes
}
