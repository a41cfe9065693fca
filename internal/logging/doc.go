// Package logging wraps log/slog with the attribute helpers and logger
// constructors shared by every singsync component.
package logging
