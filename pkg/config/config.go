package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Logger   LoggerConfig   `yaml:"logger"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

// UpstreamConfig describes the market-data API this service reads from.
// BaseURL and APIKey are required; everything else has a usable default.
type UpstreamConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	Timeout         int    `yaml:"timeout"`           // seconds
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"` // default revalidation window
}

type LoggerConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var config Config
	if configData, err := os.ReadFile("./config.yaml"); err == nil {
		if err := yaml.Unmarshal(configData, &config); err != nil {
			return nil, fmt.Errorf("parsing config.yaml: %w", err)
		}
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyEnvOverrides lets the environment win over config.yaml, mainly so the
// API key never has to live in a checked-in file.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("COINPULSE_API_BASE_URL"); v != "" {
		config.Upstream.BaseURL = v
	}
	if v := os.Getenv("COINPULSE_API_KEY"); v != "" {
		config.Upstream.APIKey = v
	}
	if v := os.Getenv("COINPULSE_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("COINPULSE_PORT"); v != "" {
		config.Server.Port = v
	}
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Upstream.Timeout <= 0 {
		config.Upstream.Timeout = 15
	}
	if config.Upstream.CacheTTLSeconds <= 0 {
		config.Upstream.CacheTTLSeconds = 60
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
}

// Validate reports missing required settings. The caller is expected to treat
// any error as fatal before serving traffic.
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required (set upstream.base_url or COINPULSE_API_BASE_URL)")
	}
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("upstream API key is required (set upstream.api_key or COINPULSE_API_KEY)")
	}
	return nil
}
