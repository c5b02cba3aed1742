package config

import (
	"fmt"
	"os"

	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
	"github.com/pelletier/go-toml/v2"
)

// Config maps to the config.toml file for the grapher service
type Config struct {
	ListenAddress        string             `toml:"ListenAddress"`
	DefaultHistoryLength int                `toml:"DefaultHistoryLength"`
	RateLimit            RateLimitConfig    `toml:"RateLimit"`
	Layouts              []common.LayoutDTO `toml:"Layouts"`
}

// RateLimitConfig holds the request limits applied on the /api routes. A zero or negative
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `toml:"RequestsPerSecond"`
	Burst             int     `toml:"Burst"`
}

// LoadConfig parses a TOML file into the Config struct
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &cfg, nil
}
