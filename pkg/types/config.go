// Config holds the explorer settings loaded from config.yaml.
package types

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Config holds the log level and an optional tab catalog override.
type Config struct {
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Tabs     []Tab  `json:"tabs,omitempty" yaml:"tabs,omitempty" mapstructure:"tabs"`
}

// Default log level.
const DefaultLogLevel = "info"

// Config validation errors.
var (
	ErrLogLevelInvalid = errors.New("invalid log level")
)

// Validate checks that the Config is well-formed. An empty Tabs list is
// valid and means the built-in catalog. Every problem found is reported.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			result = multierror.Append(result, ErrLogLevelInvalid)
		}
	}
	seen := make(map[string]bool, len(c.Tabs))
	for _, tab := range c.Tabs {
		if tab.ID == "" {
			result = multierror.Append(result, ErrEmptyTabID)
			continue
		}
		if seen[tab.ID] {
			result = multierror.Append(result, ErrDuplicateTabID)
		}
		seen[tab.ID] = true
	}
	return result.ErrorOrNil()
}
