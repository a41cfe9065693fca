// Package timedtext decodes the timed lyric formats singsync consumes (LRC
// tags, WebVTT cues, transcription segment JSON) plus plain lyric sheets into
// one common timed-line representation.
package timedtext
