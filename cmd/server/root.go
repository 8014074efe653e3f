package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/config"
	"pinkhub/backend/internal/database"
	"pinkhub/backend/internal/logger"
	"pinkhub/backend/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// app carries what every command shares once configuration is loaded.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg       *config.Config
	logWriter io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:               "server",
		Short:             "Pink Hub catalog API",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		RunE:              a.serve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.env or yaml); ./.env is read when present")
	pf.String("database-url", "", "postgres:// URL or SQLite DSN; empty uses data/pinkhub.db")
	pf.String("catalog-source", config.CatalogEmbedded, "catalog source: embedded|file|database")
	pf.String("catalog-file", "", "YAML or JSON catalog read when catalog-source=file")
	pf.String("locale", "es", "collation locale for title sorting")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("log-format", "console", "log format: console|json")
	pf.String("log-file", "", "rotating log file; empty logs to stderr")
	bindFlags(a.v, pf, map[string]string{
		"DATABASE_URL":   "database-url",
		"CATALOG_SOURCE": "catalog-source",
		"CATALOG_FILE":   "catalog-file",
		"CATALOG_LOCALE": "locale",
		"LOG_LEVEL":      "log-level",
		"LOG_FORMAT":     "log-format",
		"LOG_FILE":       "log-file",
	})

	f := root.Flags()
	f.String("http-addr", ":8080", "http listen address")
	f.Bool("seed", true, "seed an empty games table with the default catalog")
	f.Duration("message-clear-delay", session.DefaultClearDelay, "how long an accepted submission's message stays visible")
	f.Duration("session-idle-timeout", 30*time.Minute, "end sessions idle for longer than this; 0 keeps them forever")
	bindFlags(a.v, f, map[string]string{
		"HTTP_ADDR":            "http-addr",
		"SEED_DATABASE":        "seed",
		"MESSAGE_CLEAR_DELAY":  "message-clear-delay",
		"SESSION_IDLE_TIMEOUT": "session-idle-timeout",
	})

	root.AddCommand(newViewCmd(a))
	return root
}

// bindFlags binds each config key to its flag. A flag only wins over the
// environment and config file when it is set explicitly.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, ".", a.cfgFile)
	if err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	a.cfg = cfg
	a.logWriter = logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAge,
	})
	slog.Debug("config loaded", "catalog_source", cfg.CatalogSource, "locale", cfg.CatalogLocale)
	return nil
}

// loadCatalog builds the live catalog from the configured source. db is only
// used for the database source.
func (a *app) loadCatalog(ctx context.Context, db *gorm.DB) (*catalog.Catalog, error) {
	switch a.cfg.CatalogSource {
	case config.CatalogFile:
		return catalog.LoadFile(a.cfg.CatalogFile)
	case config.CatalogDatabase:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs a database", a.cfg.CatalogSource)
		}
		return database.LoadCatalog(ctx, db)
	default:
		return catalog.New(catalog.DefaultRecords())
	}
}
