// Package config supplies runtime defaults for the csvcat CLI.
//
// Defaults are resolved from an optional .env file in the working
// directory and from CSVCAT_-prefixed environment variables, environment
// taking precedence. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix, e.g. CSVCAT_FORMAT
const envPrefix = "CSVCAT_"

// Config holds CLI defaults
type Config struct {
	// Delimiter is the field delimiter for character-separated input
	Delimiter string `mapstructure:"delimiter"`

	// Format is the default output format: grid, csv, or jsonl
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Delimiter: ",",
		Format:    "grid",
	}
}

// Load resolves configuration from the .env file and the environment on
// top of the built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("delimiter", ",")
	v.SetDefault("format", "grid")

	// .env is optional
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	// Viper's AutomaticEnv does not surface unknown keys through
	// Unmarshal, so populate explicitly from the prefixed environment.
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		key, value := pair[0], pair[1]
		if strings.HasPrefix(key, envPrefix) {
			propKey := strings.ToLower(strings.TrimPrefix(key, envPrefix))
			propKey = strings.ReplaceAll(propKey, "_", ".")
			v.Set(propKey, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
