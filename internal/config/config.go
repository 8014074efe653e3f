package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Catalog sources.
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogDatabase = "database"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	HTTPAddr    string `mapstructure:"HTTP_ADDR"`
	GinMode     string `mapstructure:"GIN_MODE"`

	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	CatalogFile   string `mapstructure:"CATALOG_FILE"`
	CatalogLocale string `mapstructure:"CATALOG_LOCALE"`
	SeedDatabase  bool   `mapstructure:"SEED_DATABASE"`

	MessageClearDelay    time.Duration `mapstructure:"MESSAGE_CLEAR_DELAY"`
	SessionIdleTimeout   time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`

	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSize    int    `mapstructure:"LOG_MAX_SIZE"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAge     int    `mapstructure:"LOG_MAX_AGE"`
}

var keys = map[string]any{
	"DATABASE_URL":           "",
	"HTTP_ADDR":              ":8080",
	"GIN_MODE":               "release",
	"CATALOG_SOURCE":         CatalogEmbedded,
	"CATALOG_FILE":           "",
	"CATALOG_LOCALE":         "es",
	"SEED_DATABASE":          true,
	"MESSAGE_CLEAR_DELAY":    "5s",
	"SESSION_IDLE_TIMEOUT":   "30m",
	"SESSION_SWEEP_INTERVAL": "1m",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "console",
	"LOG_FILE":               "",
	"LOG_MAX_SIZE":           100,
	"LOG_MAX_BACKUPS":        3,
	"LOG_MAX_AGE":            28,
}

// New returns a viper instance with defaults set and environment variables
// bound, ready for flags to be bound on top.
func New() *viper.Viper {
	v := viper.New()
	for k, def := range keys {
		v.SetDefault(k, def)
		// Unmarshal only sees env values for keys viper knows about.
		_ = v.BindEnv(k)
	}
	v.AutomaticEnv()
	return v
}

// Load reads an optional .env file from dir (or the file at path when it is
// set) and decodes the merged configuration.
func Load(v *viper.Viper, dir, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName(".env")
		v.SetConfigType("env")
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", filepath.Join(dir, ".env"), err)
		}
		slog.Warn(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have no usable fallback.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogEmbedded, CatalogDatabase:
	case CatalogFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", CatalogFile)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	if c.MessageClearDelay <= 0 {
		return fmt.Errorf("MESSAGE_CLEAR_DELAY must be positive, got %s", c.MessageClearDelay)
	}
	if c.SessionIdleTimeout > 0 && c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_IDLE_TIMEOUT is set")
	}
	return nil
}
