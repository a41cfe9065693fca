// Package results persists resolved lyric results, one per media id, behind
// a pluggable store: a per-media JSON file next to the rest of the media's
// artifacts, or a single SQLite database. Cross-process coordination uses
// advisory file locks.
package results
