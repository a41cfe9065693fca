package timedtext

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"singsync/internal/textutil"
)

type segmentPayload struct {
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	Start any `json:"start"`
	Text  any `json:"text"`
}

// ParseSegments decodes a transcription tool's segment-list JSON ({"segments":
// [{"start": ..., "text": ...}, ...]}). Start and text are coerced from
// whatever scalar type the tool emitted; entries with non-finite or negative
// starts or empty text are dropped. Malformed documents yield nil.
func ParseSegments(raw []byte) []Line {
	var payload segmentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	var lines []Line
	for _, seg := range payload.Segments {
		start := coerceFloat(seg.Start)
		if math.IsNaN(start) || math.IsInf(start, 0) || start < 0 {
			continue
		}
		text := textutil.CleanLine(coerceString(seg.Text))
		if text == "" {
			continue
		}
		lines = append(lines, Line{Seconds: start, Text: text})
	}
	return Dedupe(lines, DedupeWindowSegments)
}

func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN()
		}
		return parsed
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return math.NaN()
		}
		return parsed
	default:
		return math.NaN()
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
