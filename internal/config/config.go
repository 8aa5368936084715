// Package config builds the process configuration once at startup. The
// credential comes from the environment (optionally populated from a local
// .env file); model settings may be overridden in an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultModel      = "claude-3-7-sonnet-20250219"
	DefaultMaxTokens  = 1000
	DefaultConfigName = ".gcm"

	// EnvAPIKey is the environment variable holding the Anthropic credential.
	EnvAPIKey = "ANTHROPIC_API_KEY"
)

// ErrMissingAPIKey is returned when no credential is available. The check
// happens before any repository interaction.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " must be set in environment or .env file")

// Config holds everything the message generator needs. It is constructed
// once and passed by parameter, never read as ambient global state.
type Config struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	APIBase   string `mapstructure:"api_base"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// Load reads a local .env file if present, then layers the optional config
// file (cfgFile, or $HOME/.gcm.yaml) under the environment. A missing
// credential is fatal here, before the repository is touched.
func Load(cfgFile string) (*Config, error) {
	// Best effort: absence of a .env file is the common case.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	v.SetDefault("model", DefaultModel)
	v.SetDefault("max_tokens", DefaultMaxTokens)
	v.SetDefault("api_base", "")

	if err := v.BindEnv("api_key", EnvAPIKey); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
