// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/pain001/pkg/pain001"
)

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Message  MessageConfig  `mapstructure:"message" yaml:"message"`
	Software SoftwareConfig `mapstructure:"software" yaml:"software"`
}

// LogConfig controls log output
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MessageConfig carries message-level defaults applied when the input file or
// the command line leaves them out
type MessageConfig struct {
	Version string `mapstructure:"version" yaml:"version"`
}

// SoftwareConfig describes the producing software declared in the group
// header contact details
type SoftwareConfig struct {
	Name         string `mapstructure:"name" yaml:"name"`
	Version      string `mapstructure:"version" yaml:"version"`
	Manufacturer string `mapstructure:"manufacturer" yaml:"manufacturer"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pain001")
	v.AddConfigPath(".pain001")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PAIN001")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Message defaults
	v.SetDefault("message.version", string(pain001.SPS2022))

	// Software defaults
	v.SetDefault("software.name", "pain001")
	v.SetDefault("software.version", "")
	v.SetDefault("software.manufacturer", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate default schema generation
	if !pain001.Version(config.Message.Version).Valid() {
		return fmt.Errorf("invalid message.version: %s (must be %s or %s)",
			config.Message.Version, pain001.SPS2021, pain001.SPS2022)
	}

	return nil
}

// DefaultVersion returns the configured default schema generation.
func (c *Config) DefaultVersion() pain001.Version {
	return pain001.Version(c.Message.Version)
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
