// Package catalog derives artist/track queries from weak video metadata and
// turns external lyrics catalog hits into scored lyric candidates.
package catalog
