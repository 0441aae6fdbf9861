// Package config handles CLI configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the glazier CLI configuration
type Config struct {
	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`

	// Watch command configuration
	Watch WatchConfig `mapstructure:"watch"`

	// Sim configures the synthetic native layer driving the CLI
	Sim SimConfig `mapstructure:"sim"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

// WatchConfig contains settings for the live event viewer
type WatchConfig struct {
	BufferSize int  `mapstructure:"buffer_size"` // Recent events kept on screen
	Notify     bool `mapstructure:"notify"`      // Desktop notification on connects
}

// SimConfig describes the synthetic layer the CLI runs against
type SimConfig struct {
	Monitors int     `mapstructure:"monitors"` // Number of fake monitors
	Interval float64 `mapstructure:"interval"` // Seconds between scripted events
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Logging: LoggingConfig{
			LogLevel: "",
		},
		Watch: WatchConfig{
			BufferSize: 50,
			Notify:     false,
		},
		Sim: SimConfig{
			Monitors: 2,
			Interval: 0.25,
		},
	}

	cfg *Config

	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("glazier")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "glazier"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)
	viper.SetDefault("watch.buffer_size", DefaultConfig.Watch.BufferSize)
	viper.SetDefault("watch.notify", DefaultConfig.Watch.Notify)
	viper.SetDefault("sim.monitors", DefaultConfig.Sim.Monitors)
	viper.SetDefault("sim.interval", DefaultConfig.Sim.Interval)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "glazier.toml"
	}
	return filepath.Join(home, ".config", "glazier", "glazier.toml")
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
