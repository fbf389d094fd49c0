// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fjacquet/pocket-ledger/internal/fileutils"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LEDGER_STORAGE_DRIVER.
const EnvPrefix = "LEDGER"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Driver    string `mapstructure:"driver" yaml:"driver"`
		Directory string `mapstructure:"directory" yaml:"directory"`
		Key       string `mapstructure:"key" yaml:"key"`
	} `mapstructure:"storage" yaml:"storage"`

	Ledger struct {
		CategoryPolicy string `mapstructure:"category_policy" yaml:"category_policy"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Currency struct {
		Code string `mapstructure:"code" yaml:"code"`
	} `mapstructure:"currency" yaml:"currency"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Display struct {
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"display" yaml:"display"`

	PDF struct {
		Title       string `mapstructure:"title" yaml:"title"`
		Orientation string `mapstructure:"orientation" yaml:"orientation"`
	} `mapstructure:"pdf" yaml:"pdf"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// configFile, when set, replaces the search of the standard locations.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.pocket-ledger")
		v.AddConfigPath(".pocket-ledger")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The unprefixed LOG_LEVEL is honoured as well
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_LEVEL environment variable: %w", err)
	}

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Storage.Directory = expandPath(config.Storage.Directory)

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultDataDirectory is $HOME/.pocket-ledger, or .pocket-ledger when the
// home directory is unknown.
func DefaultDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pocket-ledger"
	}
	return filepath.Join(home, ".pocket-ledger")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Storage defaults
	v.SetDefault("storage.driver", "json")
	v.SetDefault("storage.directory", DefaultDataDirectory())
	v.SetDefault("storage.key", models.DefaultStorageKey)

	// Ledger defaults
	v.SetDefault("ledger.category_policy", models.CategoryPolicyAdvisory)
	v.SetDefault("ledger.categories_file", "categories.yaml")

	v.SetDefault("currency.code", models.DefaultCurrency)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	// pt-BR dates, as the browser app displayed them
	v.SetDefault("display.date_format", "02/01/2006")

	// PDF defaults
	v.SetDefault("pdf.title", "Personal Finance Report")
	v.SetDefault("pdf.orientation", "P")
}

// Validate checks a configuration after flag overrides have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
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

	switch strings.ToLower(config.Storage.Driver) {
	case "json", "sqlite":
	default:
		return fmt.Errorf("invalid storage driver: %s (must be 'json' or 'sqlite')", config.Storage.Driver)
	}

	if strings.TrimSpace(config.Storage.Key) == "" {
		return fmt.Errorf("storage.key must not be empty")
	}

	switch config.Ledger.CategoryPolicy {
	case models.CategoryPolicyAdvisory, models.CategoryPolicyStrict:
	default:
		return fmt.Errorf("invalid category policy: %s (must be 'advisory' or 'strict')", config.Ledger.CategoryPolicy)
	}

	if !models.IsKnownCurrency(config.Currency.Code) {
		return fmt.Errorf("unknown currency code: %s", config.Currency.Code)
	}

	// Validate CSV delimiter
	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch strings.ToUpper(config.PDF.Orientation) {
	case "P", "L":
	default:
		return fmt.Errorf("invalid PDF orientation: %s (must be 'P' or 'L')", config.PDF.Orientation)
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

func expandPath(path string) string {
	return fileutils.ExpandHome(os.ExpandEnv(path))
}
