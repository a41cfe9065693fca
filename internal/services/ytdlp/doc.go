// Package ytdlp wraps the external media downloader CLI used to fetch a
// media item's native caption tracks and its audio stream. Success is
// judged by the expected output files existing afterward, not by exit code
// alone, because the tool reports partial failures inconsistently.
package ytdlp
