// Package transcribe produces best-effort speech transcription timelines and
// aligns plain lyric text against them.
package transcribe
