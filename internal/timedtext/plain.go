package timedtext

import (
	"regexp"
	"strings"

	"singsync/internal/textutil"
)

// annotationPattern matches lines that are only a bracketed section marker
// such as [Chorus] or [Verse 2].
var annotationPattern = regexp.MustCompile(`^\[[^\]]*\]$`)

// SplitPlain turns a plain lyric sheet into cleaned, non-empty lines.
// Section annotations like [Chorus] are dropped.
func SplitPlain(content string) []string {
	normalized := textutil.CollapseBlankRuns(textutil.NormalizeLineBreaks(content))
	var lines []string
	for _, raw := range strings.Split(normalized, "\n") {
		cleaned := textutil.CleanLine(raw)
		if cleaned == "" || annotationPattern.MatchString(cleaned) {
			continue
		}
		lines = append(lines, cleaned)
	}
	return lines
}
