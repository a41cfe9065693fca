package timedtext

import (
	"math"
	"strings"

	"singsync/internal/textutil"
)

// ParseVTT decodes WebVTT cue blocks. Only each cue's start timestamp is
// used; end timestamps and cue settings after the arrow are ignored. Cue
// text accumulates until the next blank line. Header, NOTE and STYLE lines
// are skipped.
func ParseVTT(content string) []Line {
	rows := strings.Split(textutil.NormalizeLineBreaks(content), "\n")
	var lines []Line

	for i := 0; i < len(rows); i++ {
		row := strings.TrimSpace(rows[i])
		if row == "" || isVTTHeaderLine(row) {
			continue
		}
		if !strings.Contains(row, "-->") {
			continue
		}
		start, _, _ := strings.Cut(row, "-->")
		seconds := ParseClockTimestamp(start)

		var parts []string
		for i+1 < len(rows) {
			next := strings.TrimSpace(rows[i+1])
			if next == "" {
				break
			}
			i++
			if strings.Contains(next, "-->") {
				// Malformed block without a separating blank line; let the
				// outer loop treat it as the next cue.
				i--
				break
			}
			if cleaned := textutil.CleanLine(next); cleaned != "" {
				parts = append(parts, cleaned)
			}
		}
		if math.IsNaN(seconds) || len(parts) == 0 {
			continue
		}
		lines = append(lines, Line{Seconds: seconds, Text: strings.Join(parts, " ")})
	}
	return Dedupe(lines, DedupeWindowTimed)
}

func isVTTHeaderLine(row string) bool {
	return strings.HasPrefix(row, "WEBVTT") ||
		strings.HasPrefix(row, "NOTE") ||
		strings.HasPrefix(row, "STYLE") ||
		strings.HasPrefix(row, "Kind:") ||
		strings.HasPrefix(row, "Language:")
}
