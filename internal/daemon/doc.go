// Package daemon wires the configured lyric sources into a resolver and
// serves it over a small HTTP API. A daemon-level advisory lock prevents two
// instances from sharing one working directory.
package daemon
