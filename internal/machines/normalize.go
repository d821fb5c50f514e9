package machines

import (
	"regexp"
	"strings"
)

var (
	hyphenRuns     = regexp.MustCompile(`[_\-]+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases s, folds runs of hyphens and underscores into a
// single space, collapses repeated whitespace, and trims. Page text and
// catalog variants must both pass through here before fuzzy comparison;
// asymmetric normalization silently degrades match quality.
func Normalize(s string) string {
	out := strings.ToLower(s)
	out = hyphenRuns.ReplaceAllString(out, " ")
	out = whitespaceRuns.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
