// Package config provides Viper-based hierarchical configuration:
// defaults, then a config.yaml found in the standard locations, then
// EXTRATO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"lrocha/extrato-csv/internal/logging"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Profile struct {
		Name string `mapstructure:"name" yaml:"name"`
	} `mapstructure:"profile" yaml:"profile"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// LoadEnv loads a .env file from the working directory or the parent, when
// one exists. Missing files are not an error.
func LoadEnv() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// InitializeConfig builds the configuration from defaults, an optional
// config file and the environment.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.extrato-csv")
	v.AddConfigPath(".extrato-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXTRATO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// LOG_LEVEL without the prefix keeps working for compatibility with
	// plain shell setups.
	if err := v.BindEnv("log.level", "EXTRATO_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		fmt.Printf("Warning: failed to bind LOG_LEVEL environment variable: %v\n", err)
	}
	if err := v.BindEnv("csv.delimiter", "EXTRATO_CSV_DELIMITER", "CSV_DELIMITER"); err != nil {
		fmt.Printf("Warning: failed to bind CSV_DELIMITER environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("profile.name", "personal")

	v.SetDefault("report.format", "text")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch config.Report.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'text', 'json' or 'csv')", config.Report.Format)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// NewLogger builds the application logger from the configured level and
// format.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
