package textutil

import (
	"html"
	"regexp"
	"strings"
)

var (
	markupPattern     = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
)

// NormalizeLineBreaks rewrites Windows and legacy Mac line endings to plain
// newlines.
func NormalizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// StripMarkup removes HTML/XML-style tags and decodes HTML entities.
func StripMarkup(s string) string {
	s = markupPattern.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// CollapseWhitespace squeezes runs of horizontal whitespace into single
// spaces and trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// CleanLine normalizes a single lyric line: markup removed, entities decoded,
// whitespace collapsed.
func CleanLine(s string) string {
	return CollapseWhitespace(StripMarkup(s))
}

// CollapseBlankRuns limits consecutive blank lines to at most one empty line
// between blocks.
func CollapseBlankRuns(s string) string {
	return blankRunPattern.ReplaceAllString(s, "\n\n")
}
