// Package config loads, normalizes, and validates the TOML configuration
// for the lyrics resolver. Defaults work out of the box; a config file only
// needs the keys it overrides.
package config
