package funcfmt

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config contains the configuration options for an Engine.
type Config struct {
	// CacheMaxSize is the maximum number of prepared templates to cache.
	// 0 disables caching.
	CacheMaxSize int
	// CacheTTL is the time-to-live for cached templates. 0 means no
	// expiration.
	CacheTTL time.Duration
	// LogLevel controls the verbosity of engine logging (debug, info,
	// warn, error, off).
	LogLevel string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CacheMaxSize: 100,
		CacheTTL:     0,
		LogLevel:     "info",
	}
}

// ConfigFromEnvironment creates a configuration from environment
// variables, falling back to defaults for unset or unparsable values.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// FUNCFMT_CACHE_MAX_SIZE
	if val := os.Getenv("FUNCFMT_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
		}
	}

	// FUNCFMT_CACHE_TTL
	if val := os.Getenv("FUNCFMT_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}

	// FUNCFMT_LOG_LEVEL
	if val := os.Getenv("FUNCFMT_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.CacheMaxSize < 0 {
		return errors.New("cache max size cannot be negative")
	}

	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}
