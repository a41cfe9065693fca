package textutil

import "strings"

// SanitizeToken converts a string to a filesystem-safe token. Letters,
// digits, hyphens and underscores are kept; everything else becomes an
// underscore. Case is preserved because media ids are case-sensitive.
// Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if strings.Trim(out, "_") == "" {
		return "unknown"
	}
	return out
}
