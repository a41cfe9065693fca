package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validStorageBackends = map[string]struct{}{
	"files":  {},
	"sqlite": {},
}

// Validate checks the configuration for values that normalization cannot
// repair.
func (c *Config) Validate() error {
	var problems []string

	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		problems = append(problems, fmt.Sprintf("paths.api_bind %q is not host:port", c.Paths.APIBind))
	}
	if c.Catalog.Enabled {
		if u, err := url.Parse(c.Catalog.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("catalog.base_url %q is not an absolute URL", c.Catalog.BaseURL))
		}
	}
	if _, ok := validStorageBackends[c.Storage.Backend]; !ok {
		problems = append(problems, fmt.Sprintf("storage.backend %q must be files or sqlite", c.Storage.Backend))
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		problems = append(problems, fmt.Sprintf("logging.format %q must be console or json", c.Logging.Format))
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		problems = append(problems, fmt.Sprintf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
