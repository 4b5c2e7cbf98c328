package model

import (
	"encoding/json"
	"testing"
)

func TestEngagementRate(t *testing.T) {
	p := &Post{Engagement: Engagement{Impressions: 200, Reactions: 5, Comments: 3, Shares: 2}}
	if got := p.EngagementRate(); got != 5.0 {
		t.Errorf("expected 5.0, got %v", got)
	}

	p.Engagement.Impressions = 0
	if got := p.EngagementRate(); got != 0 {
		t.Errorf("expected 0 for zero impressions, got %v", got)
	}
}

func TestAnalyzable(t *testing.T) {
	p := &Post{Content: "text", Engagement: Engagement{Impressions: 10}}
	if !p.Analyzable() {
		t.Error("post with content and impressions should be analyzable")
	}

	if (&Post{Content: "text"}).Analyzable() {
		t.Error("post without any engagement should not be analyzable")
	}
	if (&Post{Engagement: Engagement{Impressions: 10}}).Analyzable() {
		t.Error("post without content should not be analyzable")
	}
}

func TestJSONFieldNames(t *testing.T) {
	p := &Post{PostID: "1", Content: "hi"}
	p.Characteristics.HasImage = true

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"post_id", "content", "metadata", "engagement", "post_characteristics", "context"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
}
