// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment variables that override settings,
	// ex: FERMI_CLEAN_MIN_COV
	EnvPrefix = "FERMI"

	// DefaultMinCoverage is the average coverage below which a tip is removed
	DefaultMinCoverage = 3.0

	// DefaultMinLength is the length below which a tip is removed
	DefaultMinLength = 0

	// DefaultVerbosity logs warnings and progress
	DefaultVerbosity = 3
)

// CleanConfig is settings for simplifying the unitig graph
type CleanConfig struct {
	// tips with an average coverage below this are removed
	MinCoverage float64 `mapstructure:"min-cov"`

	// tips shorter than this are removed
	MinLength int `mapstructure:"min-len"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Clean settings
	Clean CleanConfig `mapstructure:"clean"`

	// Verbosity: 1 errors, 2 warnings, 3 progress, 4 debug
	Verbosity int `mapstructure:"verbose"`
}

// SetDefaults registers the default settings and environment overrides
func SetDefaults(v *viper.Viper) {
	v.SetDefault("clean.min-cov", DefaultMinCoverage)
	v.SetDefault("clean.min-len", DefaultMinLength)
	v.SetDefault("verbose", DefaultVerbosity)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config populated by Viper settings (from an
// optional settings file, the environment and/or command line arguments)
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load unmarshals and validates a Config from v
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unable to decode settings")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate rejects settings that can't be used
func (c *Config) Validate() error {
	if c.Clean.MinCoverage < 0 {
		return errors.Errorf("min-cov must not be negative: %v", c.Clean.MinCoverage)
	}
	if c.Clean.MinLength < 0 {
		return errors.Errorf("min-len must not be negative: %d", c.Clean.MinLength)
	}
	return nil
}
