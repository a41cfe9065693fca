package timedtext

import (
	"math"
	"regexp"
	"strings"

	"singsync/internal/textutil"
)

var lrcTagPattern = regexp.MustCompile(`\[(\d{1,3}:\d{2}(?:\.\d{1,3})?)\]`)

// ParseLRC decodes LRC-tagged lyric text. A line carrying several tags
// repeats its text at each tag. Output is sorted ascending by time and
// de-jittered.
func ParseLRC(content string) []Line {
	var lines []Line
	for _, raw := range strings.Split(textutil.NormalizeLineBreaks(content), "\n") {
		tags := lrcTagPattern.FindAllStringSubmatch(raw, -1)
		if len(tags) == 0 {
			continue
		}
		text := textutil.CleanLine(lrcTagPattern.ReplaceAllString(raw, ""))
		if text == "" {
			continue
		}
		for _, tag := range tags {
			seconds := ParseLRCTimestamp(tag[1])
			if math.IsNaN(seconds) {
				continue
			}
			lines = append(lines, Line{Seconds: seconds, Text: text})
		}
	}
	return Dedupe(lines, DedupeWindowTimed)
}

// FormatLRC renders lines back into LRC text with timestamps rounded to
// hundredths of a second.
func FormatLRC(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("[")
		b.WriteString(formatLRCTimestamp(line.Seconds))
		b.WriteString("]")
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	return b.String()
}
