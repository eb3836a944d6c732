// Package config loads runtime settings for the junctions CLI from flags,
// JUNCTIONS_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBudget is the merge budget of a full-size puzzle input.
const DefaultBudget = 1000

// EnvPrefix is prepended to every environment variable, e.g. JUNCTIONS_BUDGET.
const EnvPrefix = "JUNCTIONS"

// ErrInvalidBudget indicates a negative merge budget.
var ErrInvalidBudget = errors.New("config: budget must be non-negative")

// Config holds all runtime configuration for a junctions run.
type Config struct {
	Budget          int  `mapstructure:"budget"`
	Verbose         bool `mapstructure:"verbose"`
	PathCompression bool `mapstructure:"path-compression"`
}

// New returns a viper instance wired for env lookup. When cfgFile is empty it
// looks for .junctions.{yaml,toml,json} in the working and home directories; a
// missing file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}

		return v, nil
	}

	v.SetConfigName(".junctions")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return v, nil
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("budget", DefaultBudget)
	v.SetDefault("verbose", false)
	v.SetDefault("path-compression", false)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Budget < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidBudget, cfg.Budget)
	}

	return cfg, nil
}
