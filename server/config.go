// Package server: configuration for the HTTP service.
//
// Settings layer the same way the rest of the stack expects: defaults,
// then an optional YAML config file, then DIJKSTAR_* environment
// variables, then command-line flags applied by the caller. Later
// layers win.

package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all HTTP service configuration.
type Config struct {
	// Host is the listen address (default "127.0.0.1").
	Host string `yaml:"host"`

	// Port is the listen port (default 8000).
	Port int `yaml:"port"`

	// GraphFile is the path of a graph to load on startup and on
	// reload-graph. Empty means start with a new, empty graph.
	GraphFile string `yaml:"graph_file"`

	// GraphFormat overrides extension-based format detection for
	// GraphFile ("json" or "yaml"). Empty means detect.
	GraphFormat string `yaml:"graph_format"`

	// ReadOnly disables the endpoints that replace the graph.
	ReadOnly bool `yaml:"read_only"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `yaml:"log_level"`

	// AuthSecret, when non-empty, requires mutating requests to carry
	// a bearer token: an HMAC-signed JWT verified against this secret.
	AuthSecret string `yaml:"auth_secret"`

	// RateLimit caps requests per second per client IP; 0 disables
	// rate limiting.
	RateLimit float64 `yaml:"rate_limit"`

	// RateBurst is the burst size allowed above RateLimit (default 10
	// when rate limiting is enabled).
	RateBurst int `yaml:"rate_burst"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the service defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8000,
		LogLevel:        "info",
		RateBurst:       10,
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadFile overlays settings from a YAML config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("server: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("server: parse config: %w", err)
	}

	return nil
}

// FromEnv overlays settings from DIJKSTAR_* environment variables.
// Unset variables leave the current values untouched; malformed values
// are reported rather than ignored.
func (c *Config) FromEnv() error {
	var err error
	if v, ok := os.LookupEnv("DIJKSTAR_HOST"); ok {
		c.Host = v
	}
	if v, ok := os.LookupEnv("DIJKSTAR_PORT"); ok {
		if c.Port, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("server: DIJKSTAR_PORT: %w", err)
		}
	}
	if v, ok := os.LookupEnv("DIJKSTAR_GRAPH_FILE"); ok {
		c.GraphFile = v
	}
	if v, ok := os.LookupEnv("DIJKSTAR_GRAPH_FORMAT"); ok {
		c.GraphFormat = v
	}
	if v, ok := os.LookupEnv("DIJKSTAR_READ_ONLY"); ok {
		if c.ReadOnly, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("server: DIJKSTAR_READ_ONLY: %w", err)
		}
	}
	if v, ok := os.LookupEnv("DIJKSTAR_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("DIJKSTAR_AUTH_SECRET"); ok {
		c.AuthSecret = v
	}
	if v, ok := os.LookupEnv("DIJKSTAR_RATE_LIMIT"); ok {
		if c.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("server: DIJKSTAR_RATE_LIMIT: %w", err)
		}
	}
	if v, ok := os.LookupEnv("DIJKSTAR_RATE_BURST"); ok {
		if c.RateBurst, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("server: DIJKSTAR_RATE_BURST: %w", err)
		}
	}

	return nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
