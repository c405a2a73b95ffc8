// Package config manages coauthornet settings stored in ~/.coauthornet/config.yaml,
// with .env and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvEmail     = "COAUTHORNET_EMAIL"
	EnvAPIKey    = "COAUTHORNET_API_KEY"
	EnvThreshold = "COAUTHORNET_THRESHOLD"
	EnvTables    = "COAUTHORNET_TABLES"
)

// Config holds all settings.
type Config struct {
	PubMed    PubMed    `yaml:"pubmed"`
	Network   Network   `yaml:"network"`
	Countries Countries `yaml:"countries"`
}

// PubMed configures the E-utilities client.
type PubMed struct {
	Email     string        `yaml:"email,omitempty"`
	APIKey    string        `yaml:"api_key,omitempty"`
	Tool      string        `yaml:"tool,omitempty"`
	BatchSize int           `yaml:"batch_size,omitempty"`
	Delay     time.Duration `yaml:"delay,omitempty"`
	RetMax    int           `yaml:"retmax,omitempty"`
}

// Network configures graph filtering.
type Network struct {
	// Threshold is the minimum edge weight kept by the filter.
	Threshold int `yaml:"threshold"`
}

// Countries configures country resolution.
type Countries struct {
	// Tables is a YAML file replacing the built-in abbreviation and alias tables.
	Tables string `yaml:"tables,omitempty"`

	// Delimiter separates name and affiliation in node record files.
	Delimiter string `yaml:"delimiter,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		PubMed: PubMed{
			Tool:      "coauthornet",
			BatchSize: 200,
			Delay:     340 * time.Millisecond,
			RetMax:    1000,
		},
		Network: Network{
			Threshold: 2,
		},
		Countries: Countries{
			Delimiter: ";",
		},
	}
}

// configDirOverride holds a user-specified configuration directory.
// When empty, the default $HOME/.coauthornet is used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// Dir returns the coauthornet configuration directory.
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".coauthornet"), nil
}

// DefaultPath returns the path of the default settings file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads settings from path, falling back to DefaultPath when path is
// empty. A missing default file is not an error; a missing explicit file is.
// Environment overrides are applied after the file, then the result is validated.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from files (default ".env") into the
// process environment without overriding variables already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from COAUTHORNET_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := getenv(EnvEmail); v != "" {
		c.PubMed.Email = v
	}
	if v := getenv(EnvAPIKey); v != "" {
		c.PubMed.APIKey = v
	}
	if v := getenv(EnvTables); v != "" {
		c.Countries.Tables = v
	}
	if v := getenv(EnvThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		c.Network.Threshold = n
	}
	return nil
}

// Validate checks the settings for values the pipeline cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Network.Threshold < 1 {
		errs = append(errs, fmt.Errorf("network.threshold must be at least 1, got %d", c.Network.Threshold))
	}
	if c.PubMed.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("pubmed.batch_size must not be negative, got %d", c.PubMed.BatchSize))
	}
	if c.PubMed.Delay < 0 {
		errs = append(errs, fmt.Errorf("pubmed.delay must not be negative, got %s", c.PubMed.Delay))
	}
	if d := c.Countries.Delimiter; d != "" && len([]rune(d)) != 1 {
		errs = append(errs, fmt.Errorf("countries.delimiter must be a single character, got %q", d))
	}
	return errors.Join(errs...)
}

// Save writes the settings to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func getenv(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}
