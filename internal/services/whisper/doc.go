// Package whisper wraps the external speech-to-text CLI used as the
// last-resort lyric source and as the timing oracle for aligning plain
// catalog lyrics. The wrapper is strictly best-effort: a missing binary,
// missing audio or failed run yields an empty segment list, never an error
// the pipeline has to handle.
package whisper
