// Package config loads tool configuration from hclkit.yml and the
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the hclkit tool configuration
type Config struct {
	// Extensions lists the file extensions treated as HCL input
	Extensions []string `mapstructure:"extensions"`
	// Exclude lists directory names skipped during file discovery
	Exclude []string `mapstructure:"exclude"`
	// NoColor disables ANSI colors in diagnostics and status output
	NoColor bool `mapstructure:"no_color"`
}

// Load loads the configuration from hclkit.yml or hclkit.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("extensions", []string{".hcl", ".tf"})
	v.SetDefault("exclude", []string{".git", ".terraform", "vendor", "node_modules"})
	v.SetDefault("no_color", false)

	// Set config name and paths
	v.SetConfigName("hclkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("HCLKIT")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if len(cfg.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extensions must start with '.', got: %s", ext)
		}
	}
	return nil
}
