package blogpost

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugQuotes    = regexp.MustCompile(`['"]`)
	slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)
	tagWhitespace = regexp.MustCompile(`\s+`)
)

// SlugTakenFunc reports whether a slug is already used by another post.
// Callers exclude the post being edited when building the closure.
type SlugTakenFunc func(slug string) bool

// Slugify derives a URL slug from free text: lowercased, quotes stripped,
// runs of non-alphanumerics collapsed to single dashes. Empty input falls
// back to "post" so a slug always exists.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugQuotes.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "post"
	}
	return s
}

// EnsureUniqueSlug slugifies base and, on collision, bumps deterministically
// with a numeric suffix: "my-post", "my-post-2", "my-post-3", ...
func EnsureUniqueSlug(base string, taken SlugTakenFunc) string {
	candidate := Slugify(base)
	if taken == nil || !taken(candidate) {
		return candidate
	}

	for i := 2; ; i++ {
		bumped := fmt.Sprintf("%s-%d", candidate, i)
		if !taken(bumped) {
			return bumped
		}
	}
}

// NormalizeTag canonicalizes a tag: trimmed, lowercased, inner whitespace
// collapsed, commas removed.
func NormalizeTag(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	t = tagWhitespace.ReplaceAllString(t, " ")
	return strings.ReplaceAll(t, ",", "")
}

// maxTags caps how many tags a post may carry.
const maxTags = 25

// normalizeTags applies NormalizeTag to each tag, drops empties and
// duplicates, and caps the result at maxTags, preserving first-seen order.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, raw := range tags {
		tag := NormalizeTag(raw)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
		if len(normalized) == maxTags {
			break
		}
	}
	return normalized
}
