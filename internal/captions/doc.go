// Package captions fetches a media item's native caption tracks and selects
// the single most promising one as a lyric source.
package captions
