package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. PLAN733_LOGGING_LEVEL
const EnvPrefix = "PLAN733"

// Settings are process-level options, separate from the product edition
type Settings struct {
	ProductFile string         `mapstructure:"product_file"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Server      ServerSettings `mapstructure:"server"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	OutputFile string `mapstructure:"output_file"`
}

// ServerSettings configure the HTTP API
type ServerSettings struct {
	Address    string        `mapstructure:"address"`
	HandoffTTL time.Duration `mapstructure:"handoff_ttl"`
}

// Default values
const (
	DefaultServerAddress = "127.0.0.1:8733"
	DefaultHandoffTTL    = 15 * time.Minute
)

// LoadSettings reads settings from an optional file and PLAN733_*
// environment variables. An empty path means environment and defaults only.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("server.handoff_ttl", DefaultHandoffTTL)
	v.SetDefault("product_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if s.Server.HandoffTTL <= 0 {
		return nil, fmt.Errorf("server.handoff_ttl must be positive, got %s", s.Server.HandoffTTL)
	}
	return &s, nil
}
