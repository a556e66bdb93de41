package features

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var urlPattern = regexp.MustCompile(`http\S+`)

var tagStripper = strings.NewReplacer("[", "", "]", "", "'", "")

// SanitizeDescription replaces URL-like substrings with a single space.
func SanitizeDescription(description string) string {
	return urlPattern.ReplaceAllString(description, " ")
}

// NormalizeTags strips list-literal punctuation from the raw tags string.
// Idempotent: already-stripped text passes through unchanged.
func NormalizeTags(tags string) string {
	return tagStripper.Replace(tags)
}

// CompositeText joins title, sanitized description, channel title and
// normalized tags with single spaces, in that fixed order. This is the text
// fed to vectorization.
func CompositeText(title, description, channelTitle, tags string) string {
	return title + " " + description + " " + channelTitle + " " + tags
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount counts characters, not bytes.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}
