package transcribe

import (
	"math"

	"singsync/internal/timedtext"
)

// minAlignLines and minAlignSegments gate the alignment heuristic: below
// these the linear mapping is too coarse to be useful.
const (
	minAlignLines    = 4
	minAlignSegments = 4
)

// AlignPlain distributes plain lyric lines over a transcription timeline by
// relative position. Line i of N takes the start time of segment
// round(i/(N-1) * (M-1)). The result is time-sorted and de-jittered; it makes
// no claim of linguistic alignment, only plausible monotonic timing.
func AlignPlain(lines []string, segments []timedtext.Line) ([]timedtext.Line, bool) {
	if len(lines) < minAlignLines || len(segments) < minAlignSegments {
		return nil, false
	}
	aligned := make([]timedtext.Line, 0, len(lines))
	for i, text := range lines {
		ratio := 0.0
		if len(lines) > 1 {
			ratio = float64(i) / float64(len(lines)-1)
		}
		idx := int(math.Round(ratio * float64(len(segments)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(segments) {
			idx = len(segments) - 1
		}
		aligned = append(aligned, timedtext.Line{Seconds: segments[idx].Seconds, Text: text})
	}
	return timedtext.Dedupe(aligned, timedtext.DedupeWindowAlignment), true
}
