// Package config loads the site configuration: content database IDs, the
// deployment base path, and output settings. The auth token deliberately
// stays out of the file and comes from the environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Databases names the two content collections everything is read from.
type Databases struct {
	// Work holds projects, exhibitions and timeline entries, discriminated
	// by a Class-like field.
	Work string `yaml:"work"`
	// Artwork holds the individual artwork records.
	Artwork string `yaml:"artwork"`
}

// Config is the site configuration file shape.
type Config struct {
	// BasePath is the deployment prefix prepended to asset paths: empty in
	// development, a fixed subpath (e.g. "/dul-works") in production.
	BasePath string `yaml:"base_path"`

	Databases Databases `yaml:"databases"`

	// Output is the directory page props are written into.
	Output string `yaml:"output"`

	// AliasFile optionally points at a field-alias override YAML.
	AliasFile string `yaml:"alias_file"`
}

// TokenEnv is the environment variable holding the integration token.
const TokenEnv = "NOTION_TOKEN"

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = "public/data"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.Databases.Work == "" {
		return fmt.Errorf("config: databases.work is required")
	}
	if c.Databases.Artwork == "" {
		return fmt.Errorf("config: databases.artwork is required")
	}
	return nil
}

// Token returns the integration token from the environment.
func Token() (string, error) {
	token := os.Getenv(TokenEnv)
	if token == "" {
		return "", fmt.Errorf("%s is not set", TokenEnv)
	}
	return token, nil
}
