// Package model defines the post record data types.
package model

// Post represents a single LinkedIn post with its analytics.
// Field names match the JSON record files produced by the converter,
// so records round-trip without loss.
type Post struct {
	PostID          string          `json:"post_id"`
	Content         string          `json:"content"`
	Metadata        Metadata        `json:"metadata"`
	Engagement      Engagement      `json:"engagement"`
	Characteristics Characteristics `json:"post_characteristics"`
	Context         Context         `json:"context"`
	Notes           string          `json:"notes,omitempty"`
}

// Metadata holds when the post was published.
type Metadata struct {
	Date     string `json:"date,omitempty"` // 2006-01-02
	Time     string `json:"time,omitempty"` // 15:04
	Timezone string `json:"timezone,omitempty"`
}

// Engagement holds the raw analytics counters.
type Engagement struct {
	Impressions int     `json:"impressions"`
	Reactions   int     `json:"reactions"`
	Comments    int     `json:"comments"`
	Shares      int     `json:"shares"`
	Clicks      int     `json:"clicks"`
	Rate        float64 `json:"engagement_rate"`
}

// Characteristics describes the content's shape and format elements.
type Characteristics struct {
	Type           string   `json:"type"`
	HasImage       bool     `json:"has_image"`
	HasVideo       bool     `json:"has_video"`
	HasLink        bool     `json:"has_link"`
	HasHashtags    bool     `json:"has_hashtags"`
	Hashtags       []string `json:"hashtags,omitempty"`
	HasEmoji       bool     `json:"has_emoji"`
	HasList        bool     `json:"has_list"`
	HasQuestion    bool     `json:"has_question"`
	WordCount      int      `json:"word_count"`
	CharacterCount int      `json:"character_count"`
	LineBreaks     int      `json:"line_breaks"`
	ImageFiles     []string `json:"image_files,omitempty"`
}

// Context records why the post was written.
type Context struct {
	Topic string `json:"topic,omitempty"`
	Goal  string `json:"goal,omitempty"`
	Tone  string `json:"tone,omitempty"`
}

// Post types.
const (
	TypeTextOnly = "text_only"
	TypeImage    = "image"
	TypeVideo    = "video"
	TypeLink     = "link"
)

// EngagementRate returns (reactions+comments+shares)/impressions as a
// percentage. Zero impressions yields 0, never a division by zero.
func (p *Post) EngagementRate() float64 {
	if p.Engagement.Impressions == 0 {
		return 0
	}
	total := p.Engagement.Reactions + p.Engagement.Comments + p.Engagement.Shares
	return float64(total) / float64(p.Engagement.Impressions) * 100
}

// Analyzable reports whether the record carries enough data to feed the
// performance analysis: non-empty content and at least one counter set.
func (p *Post) Analyzable() bool {
	e := p.Engagement
	return p.Content != "" && (e.Impressions > 0 || e.Reactions > 0 || e.Comments > 0 || e.Shares > 0 || e.Clicks > 0)
}
