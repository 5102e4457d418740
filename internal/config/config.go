package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble_sort"
	DefaultSpeedMs   = 500
	DefaultTheme     = "default"
	DefaultLogLevel  = "info"
	DefaultWidth     = 60
)

type Config struct {
	Algorithm string         `yaml:"algorithm"`
	SpeedMs   int            `yaml:"speed_ms"`
	Theme     string         `yaml:"theme"`
	LogLevel  string         `yaml:"log_level"`
	Width     int            `yaml:"width"`
	Params    map[string]any `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		SpeedMs:   DefaultSpeedMs,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		Width:     DefaultWidth,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Speed is the autoplay interval. Clamping is left to the player.
func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// LoadParams reads a YAML or JSON parameter document into a map.
func LoadParams(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	params := make(map[string]any)
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, err
	}
	return params, nil
}
