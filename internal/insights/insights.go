// Package insights computes engagement statistics over post records:
// bucketed averages, top-performer selection and generation hints.
package insights

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/VillePajala/linkedin-post-generator/internal/model"
)

// Bucket is one partition of the input with its mean engagement rate.
// Buckets with zero members are never produced.
type Bucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	AvgRate float64 `json:"avg_rate"`
}

// Rated pairs a post with its computed engagement rate.
type Rated struct {
	Post *model.Post
	Rate float64
}

// RateAll computes the engagement rate for every post, preserving input order.
func RateAll(posts []*model.Post) []Rated {
	rated := make([]Rated, 0, len(posts))
	for _, p := range posts {
		rated = append(rated, Rated{Post: p, Rate: p.EngagementRate()})
	}
	return rated
}

// SortByRate orders rated posts by descending rate. Ties keep input order.
func SortByRate(rated []Rated) {
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rate > rated[j].Rate
	})
}

// TopQuartile returns the best max(1, n/4) posts by engagement rate.
func TopQuartile(rated []Rated) []Rated {
	if len(rated) == 0 {
		return nil
	}
	sorted := make([]Rated, len(rated))
	copy(sorted, rated)
	SortByRate(sorted)
	n := len(sorted) / 4
	if n < 1 {
		n = 1
	}
	return sorted[:n]
}

// BottomQuartile returns the worst max(1, n/4) posts by engagement rate.
func BottomQuartile(rated []Rated) []Rated {
	if len(rated) == 0 {
		return nil
	}
	sorted := make([]Rated, len(rated))
	copy(sorted, rated)
	SortByRate(sorted)
	n := len(sorted) / 4
	if n < 1 {
		n = 1
	}
	return sorted[len(sorted)-n:]
}

// accumulator builds buckets in first-seen label order so that ties in
// the final ranking stay stable with respect to the input.
type accumulator struct {
	order  []string
	totals map[string]float64
	counts map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{totals: map[string]float64{}, counts: map[string]int{}}
}

func (a *accumulator) add(label string, rate float64) {
	if _, ok := a.counts[label]; !ok {
		a.order = append(a.order, label)
	}
	a.totals[label] += rate
	a.counts[label]++
}

// buckets returns the non-empty buckets ranked by descending mean rate.
func (a *accumulator) buckets() []Bucket {
	out := make([]Bucket, 0, len(a.order))
	for _, label := range a.order {
		out = append(out, Bucket{
			Label:   label,
			Count:   a.counts[label],
			AvgRate: a.totals[label] / float64(a.counts[label]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgRate > out[j].AvgRate
	})
	return out
}

// ByDay buckets posts by weekday name. Posts without a parsable date are
// left out of the result entirely.
func ByDay(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, r := range rated {
		d, err := time.Parse("2006-01-02", r.Post.Metadata.Date)
		if err != nil {
			continue
		}
		acc.add(d.Weekday().String(), r.Rate)
	}
	return acc.buckets()
}

// ByHour buckets posts by publish hour ("09:00-09:59"). Posts without a
// parsable time are left out.
func ByHour(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, r := range rated {
		hour, ok := parseHour(r.Post.Metadata.Time)
		if !ok {
			continue
		}
		acc.add(fmt.Sprintf("%02d:00-%02d:59", hour, hour), r.Rate)
	}
	return acc.buckets()
}

// Length bucket boundaries, in characters.
var lengthBuckets = []struct {
	max   int
	label string
}{
	{500, "Short (0-500 chars)"},
	{1000, "Medium (501-1000 chars)"},
	{1500, "Long (1001-1500 chars)"},
}

const veryLongLabel = "Very Long (1501+ chars)"

// LengthLabel maps a character count to its length bucket.
func LengthLabel(chars int) string {
	for _, b := range lengthBuckets {
		if chars <= b.max {
			return b.label
		}
	}
	return veryLongLabel
}

// ByLength buckets posts by character-count range.
func ByLength(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, r := range rated {
		acc.add(LengthLabel(r.Post.Characteristics.CharacterCount), r.Rate)
	}
	return acc.buckets()
}

// formatFlags enumerates the boolean characteristics in report order.
var formatFlags = []struct {
	label string
	get   func(*model.Characteristics) bool
}{
	{"Image", func(c *model.Characteristics) bool { return c.HasImage }},
	{"Video", func(c *model.Characteristics) bool { return c.HasVideo }},
	{"Link", func(c *model.Characteristics) bool { return c.HasLink }},
	{"Hashtags", func(c *model.Characteristics) bool { return c.HasHashtags }},
	{"Emoji", func(c *model.Characteristics) bool { return c.HasEmoji }},
	{"List", func(c *model.Characteristics) bool { return c.HasList }},
	{"Question", func(c *model.Characteristics) bool { return c.HasQuestion }},
}

// ByFormat buckets posts by each format element they carry. A post with
// several elements contributes to several buckets.
func ByFormat(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, f := range formatFlags {
		for _, r := range rated {
			if f.get(&r.Post.Characteristics) {
				acc.add(f.label, r.Rate)
			}
		}
	}
	return acc.buckets()
}

// ByType buckets posts by their type enum ("unknown" when unset).
func ByType(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, r := range rated {
		t := r.Post.Characteristics.Type
		if t == "" {
			t = "unknown"
		}
		acc.add(t, r.Rate)
	}
	return acc.buckets()
}

// ByTopic buckets posts by context topic ("unknown" when unset).
func ByTopic(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, r := range rated {
		topic := r.Post.Context.Topic
		if topic == "" {
			topic = "unknown"
		}
		acc.add(topic, r.Rate)
	}
	return acc.buckets()
}

// ByGoal buckets posts by context goal ("unknown" when unset).
func ByGoal(rated []Rated) []Bucket {
	acc := newAccumulator()
	for _, r := range rated {
		goal := r.Post.Context.Goal
		if goal == "" {
			goal = "unknown"
		}
		acc.add(goal, r.Rate)
	}
	return acc.buckets()
}

// CountLabels tallies label occurrences over posts, most frequent first.
func CountLabels(rated []Rated, get func(*model.Post) string) []Bucket {
	var order []string
	counts := map[string]int{}
	for _, r := range rated {
		label := get(r.Post)
		if label == "" {
			label = "unknown"
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}
	out := make([]Bucket, 0, len(order))
	for _, label := range order {
		out = append(out, Bucket{Label: label, Count: counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Summary condenses what the top quartile has in common, for use as
// generation hints.
type Summary struct {
	AvgLength     int      `json:"avg_length"`
	CommonFormats []string `json:"common_formats"`
	BestTime      string   `json:"best_time,omitempty"` // "HH:00"
	BestDay       string   `json:"best_day,omitempty"`
}

// summaryFormats are the format elements considered for generation hints,
// with the names the prompt uses.
var summaryFormats = []struct {
	name string
	get  func(*model.Characteristics) bool
}{
	{"lists", func(c *model.Characteristics) bool { return c.HasList }},
	{"questions", func(c *model.Characteristics) bool { return c.HasQuestion }},
	{"hashtags", func(c *model.Characteristics) bool { return c.HasHashtags }},
	{"images", func(c *model.Characteristics) bool { return c.HasImage }},
}

// Summarize derives generation hints from the top quartile of the input.
// It needs at least three analyzable posts to say anything; below that it
// returns nil.
func Summarize(posts []*model.Post) *Summary {
	if len(posts) < 3 {
		return nil
	}
	top := TopQuartile(RateAll(posts))

	s := &Summary{}
	totalLen := 0
	for _, r := range top {
		totalLen += r.Post.Characteristics.CharacterCount
	}
	s.AvgLength = totalLen / len(top)

	// A format element counts as common when at least half the top
	// performers use it.
	for _, f := range summaryFormats {
		n := 0
		for _, r := range top {
			if f.get(&r.Post.Characteristics) {
				n++
			}
		}
		if float64(n)/float64(len(top)) >= 0.5 {
			s.CommonFormats = append(s.CommonFormats, f.name)
		}
	}

	if hours := ByHour(top); len(hours) > 0 {
		s.BestTime = strings.SplitN(hours[0].Label, "-", 2)[0]
	}
	if days := ByDay(top); len(days) > 0 {
		s.BestDay = days[0].Label
	}
	return s
}

// parseHour extracts the hour from a "HH:MM" string.
func parseHour(t string) (int, bool) {
	if t == "" {
		return 0, false
	}
	parts := strings.SplitN(t, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
