package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the tool-wide settings that are not positional arguments.
// Values resolve defaults < GITTIME_* environment variables < flags; the
// command layer applies the flag overrides.
type Config struct {
	User    string `mapstructure:"user"` // only prompt for commits authored by this email
	Verbose bool   `mapstructure:"verbose"`
	Debug   bool   `mapstructure:"debug"`
	NoColor bool   `mapstructure:"no_color"`
}

func Default() *Config {
	return &Config{}
}

// Load layers environment overrides over defaults.
func Load() (*Config, error) {
	v := viper.New()

	cfg := Default()
	v.SetDefault("user", cfg.User)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("no_color", cfg.NoColor)

	v.SetEnvPrefix("GITTIME")
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}
