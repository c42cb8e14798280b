package rest

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds REST server configuration loaded from TOOLKIT_REST_*
// environment variables.
type Config struct {
	// Addr is the listen address for the REST server.
	Addr string `envconfig:"ADDR" default:":8080"`

	// RateLimit is the number of requests allowed per IP per minute.
	RateLimit int `envconfig:"RATE_LIMIT" default:"120"`

	// AllowedOrigins is the CORS origin allowlist.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

// LoadConfig reads Config from TOOLKIT_REST_* environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("TOOLKIT_REST", &c); err != nil {
		return nil, fmt.Errorf("loading REST config: %w", err)
	}
	if c.RateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	return &c, nil
}
