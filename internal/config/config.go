// Package config holds application settings unmarshalled from Viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. VIBE_DNA_SERVER_ADDR.
const EnvPrefix = "VIBE_DNA"

// FileName is the config file name looked up in the home directory.
const FileName = ".vibe-dna"

// ServerConfig configures the web form server.
type ServerConfig struct {
	// address to listen on
	Addr string `mapstructure:"addr"`

	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// longest sequence accepted from the form
	MaxSequenceLength int `mapstructure:"max_sequence_length"`
}

// ChartConfig sets the rendered chart size in pixels.
type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// LogConfig configures logging.
type LogConfig struct {
	// one of debug, info, warn, error
	Level string `mapstructure:"level"`
}

// Config is the root-level settings struct.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Charts ChartConfig  `mapstructure:"charts"`
	Log    LogConfig    `mapstructure:"log"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.max_sequence_length", 100000)
	v.SetDefault("charts.width", 1000)
	v.SetDefault("charts.height", 600)
	v.SetDefault("log.level", "info")
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that sizes and limits are usable.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.MaxSequenceLength <= 0 {
		return fmt.Errorf("server.max_sequence_length must be positive, got %d", c.Server.MaxSequenceLength)
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts size must be positive, got %dx%d", c.Charts.Width, c.Charts.Height)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}
