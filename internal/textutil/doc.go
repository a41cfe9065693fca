// Package textutil provides the text normalization and fingerprinting
// primitives shared by the lyric parsers, the candidate deduplicator and the
// script classifier.
package textutil
