// Package lrclib wraps the LRCLIB lyrics catalog REST API: a direct
// track/artist lookup endpoint and a free-text search endpoint. Any non-2xx
// response or unparsable body is treated as "no result" because the catalog
// is one unreliable source among several, not a dependency the pipeline may
// fail on.
package lrclib
