// Package convert turns LinkedIn Analytics spreadsheet exports into post
// record files.
package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/VillePajala/linkedin-post-generator/internal/model"
)

// The export is a row-labeled two-column sheet: label in column A, value
// in column B. These are the labels we recognize; anything else is
// ignored so newer exports keep working.
const (
	labelPostURL     = "Post URL"
	labelPostDate    = "Post Date"
	labelPublishTime = "Post Publish Time"
	labelImpressions = "Impressions"
	labelReactions   = "Reactions"
	labelComments    = "Comments"
	labelContent     = "Content"
	labelImage       = "image" // sentinel, compared case-insensitively
)

// Word characters are Unicode letters and digits, not just ASCII, so
// accented text is neither flagged as emoji nor cut out of hashtags.
var (
	hashtagRe = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	emojiRe   = regexp.MustCompile(`[^\p{L}\p{N}_\s,.\-!?]`)
	listRe    = regexp.MustCompile(`\n\d+\.|\n-|\n•`)
	linkRe    = regexp.MustCompile(`https?://`)
)

// File parses a single .xlsx export into a post record.
func File(path string) (*model.Post, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	return Rows(rows), nil
}

// Rows maps label/value rows onto a post record and classifies the
// content. It never fails: unrecognized labels are skipped and bad
// values default to zero.
func Rows(rows [][]string) *model.Post {
	post := &model.Post{
		Metadata:        model.Metadata{Timezone: "EET"},
		Characteristics: model.Characteristics{Type: model.TypeTextOnly},
		Context:         model.Context{Tone: "professional"},
		Notes:           "Imported from LinkedIn Analytics Excel export",
	}

	for i, row := range rows {
		label := cell(row, 0)
		value := cell(row, 1)
		if label == "" {
			continue
		}

		switch {
		case label == labelPostURL && value != "":
			post.PostID = idFromURL(value)
		case label == labelPostDate:
			post.Metadata.Date = parseDate(value)
		case label == labelPublishTime:
			post.Metadata.Time = parseTime(value)
		case label == labelImpressions:
			post.Engagement.Impressions = parseNumber(value)
		case label == labelReactions:
			post.Engagement.Reactions = parseNumber(value)
		case label == labelComments:
			post.Engagement.Comments = parseNumber(value)
		case label == labelContent:
			post.Content = extractContent(rows, i)
		case strings.EqualFold(label, labelImage):
			post.Characteristics.HasImage = true
		}
	}

	if post.Engagement.Impressions > 0 {
		total := post.Engagement.Reactions + post.Engagement.Comments + post.Engagement.Shares
		rate := float64(total) / float64(post.Engagement.Impressions) * 100
		post.Engagement.Rate = float64(int(rate*100+0.5)) / 100
	}

	classify(post)
	return post
}

// extractContent collects the multi-row content block that follows the
// Content label. The block ends at the Image sentinel; rows after it are
// never content even if they look like it.
func extractContent(rows [][]string, start int) string {
	var lines []string
	for i := start + 1; i < len(rows); i++ {
		label := cell(rows[i], 0)
		value := cell(rows[i], 1)

		if strings.EqualFold(label, labelImage) {
			break
		}
		if value != "" {
			lines = append(lines, value)
		} else if label != "" {
			lines = append(lines, label)
		}
	}
	return strings.Join(lines, "\n\n")
}

// classify fills in the content characteristics and the type enum.
func classify(post *model.Post) {
	c := &post.Characteristics
	content := post.Content
	if content != "" {
		c.WordCount = len(strings.Fields(content))
		c.CharacterCount = len([]rune(content))
		c.LineBreaks = strings.Count(content, "\n")
		c.HasEmoji = emojiRe.MatchString(content)
		c.HasQuestion = strings.Contains(content, "?")
		c.Hashtags = hashtagRe.FindAllString(content, -1)
		c.HasHashtags = len(c.Hashtags) > 0
		c.HasList = listRe.MatchString(content)
		c.HasLink = linkRe.MatchString(content)
	}

	switch {
	case c.HasVideo:
		c.Type = model.TypeVideo
	case c.HasImage:
		c.Type = model.TypeImage
	case c.HasLink:
		c.Type = model.TypeLink
	}
}

// idFromURL extracts the post id, the part after the last colon of the
// share URL (urn:li:share:NNNN). A URL without a colon is used as-is.
func idFromURL(url string) string {
	if i := strings.LastIndex(url, ":"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// parseNumber parses an integer that may carry thousands separators
// ("5,537"). Unparsable values become 0.
func parseNumber(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Some exports format counters as floats.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

var dateFormats = []string{"Jan 2, 2006", "2006-01-02"}

// parseDate normalizes "Sep 30, 2025"-style dates to 2006-01-02.
// Unparsable dates yield "".
func parseDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return ""
}

// parseTime normalizes "6:54 AM"-style times to 24h "15:04".
// Unparsable times yield "".
func parseTime(s string) string {
	t, err := time.Parse("3:04 PM", strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return t.Format("15:04")
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
