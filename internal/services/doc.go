// Package services defines shared utilities consumed by the external tool
// and catalog integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so sources classify
//     failures uniformly before degrading to empty results.
//   - The CommandRunner abstraction that makes external process invocation
//     testable: argument vectors (never shell strings), working directory,
//     timeout, captured output with a truncation flag.
package services
