package database

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pinkhub/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DefaultSQLitePath is used when no DSN is configured.
const DefaultSQLitePath = "data/pinkhub.db"

// Open opens a gorm.DB for dsn, picking the driver from its form:
//   - postgres://... or postgresql://... uses Postgres
//   - sqlite:///path, file:path or :memory: uses SQLite
//   - empty falls back to a local SQLite file
func Open(dsn string, w io.Writer) (*gorm.DB, error) {
	if w == nil {
		w = os.Stdout
	}
	gormLogger := logger.New(
		log.New(w, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{Logger: gormLogger}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	if dsn == "" {
		if err := os.MkdirAll(filepath.Dir(DefaultSQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn = "file:" + filepath.ToSlash(DefaultSQLitePath)
	}
	if strings.HasPrefix(dsn, "sqlite:///") {
		dsn = "file:" + strings.TrimPrefix(dsn, "sqlite:///")
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Game{})
}

// Connect initializes DB and runs migrations. Failures are fatal.
func Connect(dsn string, w io.Writer) {
	var err error
	DB, err = Open(dsn, w)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	slog.Info("database connection established", "driver", DB.Dialector.Name())

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	slog.Info("database migrated")
}
