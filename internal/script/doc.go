// Package script classifies text into coarse writing-system categories and
// decides whether lyric text is plausible for the script a song is expected
// to use. The classification is per Unicode block family, not per language:
// Hiragana, Katakana and Han ideographs all count toward one Japanese bucket.
package script
