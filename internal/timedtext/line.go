package timedtext

import "sort"

// Line pairs one lyric line with its playback position.
type Line struct {
	Seconds float64 `json:"timeSeconds"`
	Text    string  `json:"text"`
}

// De-jitter windows per producer. Rolling captions and LRC sheets repeat a
// line across nearby tags; transcription segments jitter less.
const (
	DedupeWindowTimed     = 0.8
	DedupeWindowSegments  = 0.6
	DedupeWindowAlignment = 0.5
)

// Dedupe sorts lines ascending by time and drops any line whose text equals
// the immediately preceding kept line's text when the two are within the
// given window of each other.
func Dedupe(lines []Line, window float64) []Line {
	if len(lines) == 0 {
		return nil
	}
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Seconds < sorted[j].Seconds
	})

	kept := sorted[:1]
	for _, line := range sorted[1:] {
		prev := kept[len(kept)-1]
		if line.Text == prev.Text && line.Seconds-prev.Seconds <= window {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// JoinText concatenates line text with newlines, used for script checks and
// fingerprinting.
func JoinText(lines []Line) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0].Text
	}
	total := 0
	for _, line := range lines {
		total += len(line.Text) + 1
	}
	buf := make([]byte, 0, total)
	for i, line := range lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, line.Text...)
	}
	return string(buf)
}
