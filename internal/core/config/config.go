// Package config handles configuration loading and validation for bugbee.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/bugbee/internal/core/workitem"
)

// AuthTokenEnv is the environment variable consulted when the config file
// does not set an auth token.
const AuthTokenEnv = "BUGBEE_AUTH_TOKEN"

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Rules    []Rule         `yaml:"rules"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Listen is the host:port the API binds to.
	Listen string `yaml:"listen"`
	// AuthToken is the static bearer token required on API requests.
	// Falls back to $BUGBEE_AUTH_TOKEN when empty.
	AuthToken string `yaml:"auth_token"`
}

// DatabaseConfig holds SQLite connection pool settings.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	// BusyTimeout is the SQLite busy timeout in milliseconds.
	BusyTimeout int `yaml:"busy_timeout"`
}

// Rule applies defaults to newly created work items whose project key
// matches the glob pattern. The first matching rule wins.
type Rule struct {
	// Pattern matches against the project key (supports glob patterns).
	Pattern string `yaml:"pattern"`
	// Assign is the member ID assigned when the item has no assignee.
	Assign string `yaml:"assign"`
	// Priority is applied when the item has no explicit priority.
	Priority string `yaml:"priority"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if cfg.Server.AuthToken == "" {
		cfg.Server.AuthToken = os.Getenv(AuthTokenEnv)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.Listen == "" {
		c.Server.Listen = defaults.Server.Listen
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rules[%d]: pattern is required", i)
		}
		if rule.Assign == "" && rule.Priority == "" {
			return fmt.Errorf("rules[%d]: must set assign or priority", i)
		}
		if rule.Priority != "" && !workitem.Priority(rule.Priority).IsValid() {
			return fmt.Errorf("rules[%d]: invalid priority %q", i, rule.Priority)
		}
	}

	return nil
}

// MatchRule returns the first rule whose pattern matches the project key.
func (c *Config) MatchRule(projectKey string) (Rule, bool) {
	for _, rule := range c.Rules {
		ok, err := doublestar.Match(rule.Pattern, projectKey)
		if err == nil && ok {
			return rule, true
		}
	}
	return Rule{}, false
}

// DatabasePath returns the path to the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "bugbee.db")
}
