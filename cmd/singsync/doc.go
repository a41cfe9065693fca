// Command singsync resolves synchronized lyrics for downloaded media: it
// fetches native caption tracks, queries the lyrics catalog, aligns plain
// sheets against a speech transcription, and serves results over HTTP.
package main
