// Package contexts manages named topic contexts: YAML files that steer
// automatic post generation and remember which angles were covered.
package contexts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxRecentAngles caps the covered-angle history. The list is ordered
// newest first; entries beyond the cap are dropped from the tail.
const MaxRecentAngles = 10

// Context is one named topical profile.
type Context struct {
	Topic            string   `yaml:"topic"`
	Description      string   `yaml:"description"`
	TargetAudience   string   `yaml:"target_audience"`
	Themes           []string `yaml:"themes"`
	KeyMessages      []string `yaml:"key_messages"`
	PostingFrequency string   `yaml:"posting_frequency"`
	RecentAngles     []string `yaml:"recent_angles_covered"`
}

// AddAngle prepends a dated angle entry and enforces the history cap.
func (c *Context) AddAngle(summary string, when time.Time) {
	entry := when.Format("2006-01-02") + ": " + summary
	c.RecentAngles = append([]string{entry}, c.RecentAngles...)
	if len(c.RecentAngles) > MaxRecentAngles {
		c.RecentAngles = c.RecentAngles[:MaxRecentAngles]
	}
}

// Store reads and writes contexts in a directory, one YAML file per name.
type Store struct {
	Dir string
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+".yaml")
}

// List returns the names of all stored contexts, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read contexts dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a named context. A missing context is an error naming it.
func (s *Store) Load(name string) (*Context, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("context %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	var c Context
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse context %q: %w", name, err)
	}
	return &c, nil
}

// Save writes a context, creating the directory if needed. Last writer
// wins; there is no locking, per the single-user design.
func (s *Store) Save(name string, c *Context) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create contexts dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), b, 0o644)
}

// Create writes a fresh template for a new context. It refuses to
// overwrite an existing one.
func (s *Store) Create(name string) error {
	if _, err := os.Stat(s.path(name)); err == nil {
		return fmt.Errorf("context %q already exists", name)
	}
	return s.Save(name, &Context{
		Topic:          "Your Topic Name",
		Description:    "Brief description of what this topic is about",
		TargetAudience: "Who is this content for? (e.g., tech professionals, startup founders)",
		Themes: []string{
			"Theme or angle 1",
			"Theme or angle 2",
			"Theme or angle 3",
			"Add more themes...",
		},
		KeyMessages: []string{
			"Key message or perspective 1",
			"Key message or perspective 2",
			"Add more messages...",
		},
		PostingFrequency: "How often? (e.g., weekly, bi-weekly)",
		RecentAngles:     []string{},
	})
}

// Delete removes a named context.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("context %q not found", name)
	}
	return err
}
