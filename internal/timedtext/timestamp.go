package timedtext

import (
	"math"
	"strconv"
	"strings"
)

// ParseLRCTimestamp parses an LRC tag body ("mm:ss" or "mm:ss.hh") into
// seconds. Malformed input yields NaN so callers can filter without
// branching on errors.
func ParseLRCTimestamp(value string) float64 {
	value = strings.TrimSpace(value)
	minutesText, rest, ok := strings.Cut(value, ":")
	if !ok {
		return math.NaN()
	}
	minutes, err := strconv.Atoi(minutesText)
	if err != nil || minutes < 0 {
		return math.NaN()
	}
	seconds, err := strconv.ParseFloat(rest, 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return math.NaN()
	}
	return float64(minutes)*60 + seconds
}

// ParseClockTimestamp parses a WebVTT-style timestamp ("hh:mm:ss.fff" or
// "mm:ss.fff") into seconds, returning NaN on malformed input.
func ParseClockTimestamp(value string) float64 {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return math.NaN()
	}

	var hours int
	if len(parts) == 3 {
		parsed, err := strconv.Atoi(parts[0])
		if err != nil || parsed < 0 {
			return math.NaN()
		}
		hours = parsed
		parts = parts[1:]
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 || minutes >= 60 {
		return math.NaN()
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return math.NaN()
	}
	return float64(hours)*3600 + float64(minutes)*60 + seconds
}

func formatLRCTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	hundredths := int(math.Round(seconds * 100))
	minutes := hundredths / 6000
	hundredths -= minutes * 6000
	return pad2(minutes) + ":" + pad2(hundredths/100) + "." + pad2(hundredths%100)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
