package script

import (
	"strings"
	"unicode"
)

// Type is a coarse writing-system classification, not a language code.
type Type string

const (
	Latin    Type = "latin"
	Korean   Type = "korean"
	Japanese Type = "japanese"
	Cyrillic Type = "cyrillic"
	Mixed    Type = "mixed"
	Unknown  Type = "unknown"
)

// counts holds per-family classifiable character tallies for one text.
type counts struct {
	latin    int
	hangul   int
	japanese int
	cyrillic int
}

func (c counts) total() int {
	return c.latin + c.hangul + c.japanese + c.cyrillic
}

func (c counts) familiesPresent() int {
	present := 0
	for _, n := range []int{c.latin, c.hangul, c.japanese, c.cyrillic} {
		if n > 0 {
			present++
		}
	}
	return present
}

// One predicate per script family so new families can be added without
// touching the classification call sites.

func isLatinLetter(r rune) bool {
	return unicode.IsLetter(r) && unicode.Is(unicode.Latin, r)
}

func isHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}

func isJapanese(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Han, r)
}

func isCyrillic(r rune) bool {
	return unicode.Is(unicode.Cyrillic, r)
}

func count(text string) counts {
	var c counts
	for _, r := range text {
		switch {
		case isHangul(r):
			c.hangul++
		case isJapanese(r):
			c.japanese++
		case isCyrillic(r):
			c.cyrillic++
		case isLatinLetter(r):
			c.latin++
		}
	}
	return c
}

// Detect classifies text into a script category. Texts with at most one
// classifiable character are Unknown; texts drawing on three or more script
// families are Mixed; otherwise the dominant family wins, with ties broken
// by a fixed enumeration order (Latin, Hangul, Japanese, Cyrillic).
func Detect(text string) Type {
	c := count(text)
	if c.total() <= 1 {
		return Unknown
	}
	if c.familiesPresent() >= 3 {
		return Mixed
	}

	best := Unknown
	bestCount := 0
	for _, bucket := range []struct {
		typ Type
		n   int
	}{
		{Latin, c.latin},
		{Korean, c.hangul},
		{Japanese, c.japanese},
		{Cyrillic, c.cyrillic},
	} {
		if bucket.n > bestCount {
			best = bucket.typ
			bestCount = bucket.n
		}
	}
	return best
}

// DetectExpected infers the script a song's lyrics are expected to use from
// its title and channel name. The title alone wins when it classifies
// cleanly; otherwise the combined text decides.
func DetectExpected(title, channel string) Type {
	if t := Detect(title); t != Unknown && t != Mixed {
		return t
	}
	return Detect(strings.TrimSpace(title + " " + channel))
}

// Compatible reports whether text is plausible lyrics for the expected
// script. Unknown and Mixed expectations accept everything. Korean and
// Japanese expectations reject any Cyrillic contamination outright but
// tolerate bilingual lines with enough Latin text. A Latin expectation
// tolerates only light contamination from other script families.
func Compatible(text string, expected Type) bool {
	if expected == Unknown || expected == Mixed {
		return true
	}
	c := count(text)
	switch expected {
	case Korean:
		if c.cyrillic > 0 {
			return false
		}
		return c.hangul >= 2 || c.latin >= 2
	case Japanese:
		if c.cyrillic > 0 {
			return false
		}
		return c.japanese >= 2 || c.latin >= 2
	case Cyrillic:
		return c.cyrillic >= 2
	case Latin:
		if c.latin < 2 {
			return false
		}
		nonLatin := c.hangul + c.japanese + c.cyrillic
		allowed := c.latin * 6 / 10
		if allowed < 2 {
			allowed = 2
		}
		return nonLatin <= allowed
	default:
		return true
	}
}
