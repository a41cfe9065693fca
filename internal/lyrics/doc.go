// Package lyrics holds the resolution domain model and the pipeline
// orchestrator that reconciles caption, catalog and transcription sources
// into one best-available lyric result per media id.
package lyrics
