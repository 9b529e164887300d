package insight

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the dashboard policy: which credentials profile to use, the
// trend day-count selector and the memoization window.
type Config struct {
	Profile     string        `mapstructure:"profile"`
	DefaultDays int           `mapstructure:"default_days"`
	AllowedDays []int         `mapstructure:"allowed_days"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// DaysAllowed reports whether days is one of the configured selector values.
func (c *Config) DaysAllowed(days int) bool {
	for _, d := range c.AllowedDays {
		if d == days {
			return true
		}
	}
	return false
}

func DefaultConfig() *Config {
	return &Config{
		Profile:     "default",
		DefaultDays: 30,
		AllowedDays: []int{7, 14, 30, 90},
		CacheTTL:    time.Hour,
	}
}

// LoadConfig reads the dashboard policy from a yaml file, filling unset keys
// with the defaults above.
func LoadConfig(path string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("default_days", defaults.DefaultDays)
	v.SetDefault("allowed_days", defaults.AllowedDays)
	v.SetDefault("cache_ttl", defaults.CacheTTL)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
	}
	return &cfg, nil
}
