package textutil

import (
	"strings"
	"unicode"
)

// fingerprintMaxRunes bounds fingerprint length so very long lyric sheets
// compare in constant space.
const fingerprintMaxRunes = 2400

// Fingerprint reduces text to a normalized digest for near-duplicate
// detection: lowercased, letters/digits/whitespace only, whitespace
// collapsed, truncated. Returns the empty string when nothing survives.
func Fingerprint(text string) string {
	lowered := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lowered))
	lastSpace := true
	count := 0
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
			count++
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
				count++
			}
		}
		if count >= fingerprintMaxRunes {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
