package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Flow Meter Calibration: Best Practices", "flow-meter-calibration:-best-practices"},
		{"One, Two. (Three)", "one-two-three"},
		{"Already-Slugged", "already-slugged"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SlugFromTitle(tc.title), "title %q", tc.title)
	}
}

func TestSlugCollisionsArePossible(t *testing.T) {
	// Differently punctuated titles can derive the same slug.
	assert.Equal(t, SlugFromTitle("Safety First."), SlugFromTitle("Safety, First"))
}

func TestPreviewFromContent_StripsLiteralTags(t *testing.T) {
	got := PreviewFromContent("<p>Hello<br>there</p>")
	assert.Equal(t, "Hello there", got)
}

func TestPreviewFromContent_KeepsOtherTags(t *testing.T) {
	// Only the literal <p>, </p> and <br> tags are stripped.
	got := PreviewFromContent("<h2>Title</h2>")
	assert.Equal(t, "<h2>Title</h2>", got)
}

func TestPreviewFromContent_TruncatesAt150(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := PreviewFromContent(long)
	assert.Equal(t, strings.Repeat("a", 150)+"...", got)

	exact := strings.Repeat("b", 150)
	assert.Equal(t, exact, PreviewFromContent(exact))
}

func TestReadTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}
	cases := []struct {
		words int
		want  string
	}{
		{0, "1 min read"},
		{10, "1 min read"},
		{200, "1 min read"},
		{450, "2 min read"},
		{500, "2 min read"}, // ties round to even
		{700, "4 min read"},
		{1000, "5 min read"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ReadTime(words(tc.words)), "%d words", tc.words)
	}
}
