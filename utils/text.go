package utils

import (
	"fmt"
	"math"
	"strings"
)

// SlugFromTitle derives the URL-safe key used by the blog feed: the title
// lower-cased, spaces turned into hyphens, and commas, periods and
// parentheses removed. Two titles can derive the same slug; the feed keeps
// whichever entry was written last.
func SlugFromTitle(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	for _, ch := range []string{",", ".", "(", ")"} {
		slug = strings.ReplaceAll(slug, ch, "")
	}
	return slug
}

// PreviewFromContent builds the feed description: the literal markup tags
// <p>, </p> and <br> are stripped and the result is truncated to 150
// characters with a trailing ellipsis when longer.
func PreviewFromContent(content string) string {
	desc := strings.ReplaceAll(content, "<p>", "")
	desc = strings.ReplaceAll(desc, "</p>", "")
	desc = strings.ReplaceAll(desc, "<br>", " ")
	if runes := []rune(desc); len(runes) > 150 {
		return string(runes[:150]) + "..."
	}
	return desc
}

// ReadTime estimates reading time at 200 words per minute, never below one
// minute. Halfway values round to the nearest even minute, so 500 words is
// 2 minutes and 700 is 4.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.RoundToEven(float64(words) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
