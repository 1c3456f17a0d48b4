package config

import (
	"fmt"
	"net"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration on top
// of Validate(): listen address syntax, rule pattern syntax, and data
// directory accessibility. Run before starting the API server.
func (c *Config) ValidateDeep() error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		criterio.Run("server.listen", c.Server.Listen, listenAddr),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		c.validateRulePatterns(),
	)
}

// validateRulePatterns checks rule patterns are valid glob syntax.
func (c *Config) validateRulePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, rule := range c.Rules {
		if !doublestar.ValidatePattern(rule.Pattern) {
			errs = errs.Append(fmt.Sprintf("rules[%d].pattern", i), fmt.Errorf("invalid glob pattern %q", rule.Pattern))
		}
	}
	return errs.ToError()
}

// listenAddr validates a host:port listen address.
func listenAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
