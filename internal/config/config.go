package config

import (
	"time"

	"github.com/Mystogan321/useradmin/internal/docstore"
)

// Config holds runtime settings for the user admin console.
type Config struct {
	// Storage selects and parameterizes the document store driver.
	Storage docstore.Config

	// SecretKey signs the auth tokens issued by the mock backend.
	SecretKey string

	// TokenValidity bounds the lifetime of issued auth tokens.
	TokenValidity time.Duration

	// TransportLatency is the artificial delay added to every client call.
	TransportLatency time.Duration

	// ItemsPerPage is the initial table page size.
	ItemsPerPage int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = docstore.Config{Driver: docstore.DriverMemory}
	c.SecretKey = "local-dev-secret"
	c.TokenValidity = 24 * time.Hour
	c.TransportLatency = 800 * time.Millisecond
	c.ItemsPerPage = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
