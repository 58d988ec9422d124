package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
)

// DefaultConfigName is the config file looked up in the working directory
// when no explicit path is given
const DefaultConfigName = "stockmgr"

// EnvPrefix prefixes environment overrides, e.g. STOCKMGR_FILE
const EnvPrefix = "STOCKMGR"

// Config holds stockmgr settings
type Config struct {
	File             string `mapstructure:"file"`
	LogLevel         string `mapstructure:"log_level"`
	Format           string `mapstructure:"format"`
	RestockThreshold int64  `mapstructure:"restock_threshold"`
	ExpiryDays       int    `mapstructure:"expiry_days"`
	TopN             int    `mapstructure:"top_n"`
}

// Formats lists the supported output formats
var Formats = []interface{}{"text", "json", "yaml", "csv"}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("file", "items.csv")
	v.SetDefault("log_level", "info")
	v.SetDefault("format", "text")
	v.SetDefault("restock_threshold", 10)
	v.SetDefault("expiry_days", 7)
	v.SetDefault("top_n", 5)
}

// NewViper returns a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into v and decodes it. When path is empty an
// optional stockmgr.yaml in the working directory is used if present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config -> %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config -> %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config -> %w", err)
	}

	return cfg, nil
}

// Validate checks that the settings are usable
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.File, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.Required, validation.In(Formats...)),
		validation.Field(&c.TopN, validation.Min(0)),
	)
}
