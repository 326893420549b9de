// Package config handles application configuration loading from the
// environment (and an optional config file). It provides a centralized
// Config struct used across the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host string `mapstructure:"APP_HOST"`
	Port string `mapstructure:"APP_PORT"`
	Env  string `mapstructure:"APP_ENV"` // "development", "production", "testing"

	// Valkey (Redis-compatible result cache) — optional. An empty host
	// disables the result cache entirely.
	ValkeyHost     string `mapstructure:"VALKEY_HOST"`
	ValkeyPort     string `mapstructure:"VALKEY_PORT"`
	ValkeyPassword string `mapstructure:"VALKEY_PASSWORD"`

	// Primary content tier: local OpenAI-compatible model endpoint.
	// An empty endpoint marks the tier unavailable.
	LocalAIEndpoint string `mapstructure:"LOCAL_AI_ENDPOINT"`
	LocalAIModel    string `mapstructure:"LOCAL_AI_MODEL"`
	LocalAIKey      string `mapstructure:"LOCAL_AI_KEY"`

	// Secondary content tier: cloud Messages endpoint. An empty key
	// marks the tier unavailable.
	CloudAIKey      string `mapstructure:"CLOUD_AI_KEY"`
	CloudAIModel    string `mapstructure:"CLOUD_AI_MODEL"`
	CloudAIEndpoint string `mapstructure:"CLOUD_AI_ENDPOINT"`

	// Image provider (Pexels). Absent or implausibly short keys put the
	// adapter in placeholder mode — never an error.
	PexelsAPIKey string `mapstructure:"PEXELS_API_KEY"`

	// Rate limiting for the generation endpoint.
	RateLimit  int           `mapstructure:"RATE_LIMIT"`
	RateWindow time.Duration `mapstructure:"RATE_WINDOW"`
}

// Load reads configuration from environment variables, with an optional
// config.yaml in the working directory, applying development defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("VALKEY_PORT", "6379")
	v.SetDefault("LOCAL_AI_MODEL", "llama3.1")
	v.SetDefault("CLOUD_AI_MODEL", "claude-sonnet-4-5")
	v.SetDefault("RATE_LIMIT", 30)
	v.SetDefault("RATE_WINDOW", time.Minute)

	// Empty defaults so AutomaticEnv-only keys survive Unmarshal.
	for _, key := range []string{
		"VALKEY_HOST", "VALKEY_PASSWORD",
		"LOCAL_AI_ENDPOINT", "LOCAL_AI_KEY",
		"CLOUD_AI_KEY", "CLOUD_AI_ENDPOINT",
		"PEXELS_API_KEY",
	} {
		v.SetDefault(key, "")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; the environment is authoritative.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ResultCacheEnabled reports whether a Valkey host is configured.
func (c *Config) ResultCacheEnabled() bool {
	return c.ValkeyHost != ""
}
