package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storycrafter/internal/logging"
	"storycrafter/internal/models"
)

// ClientDBFile is the client database's file name; GetDefaultDBPath decides its directory.
const ClientDBFile = "storycrafter-client.db"

// Config holds DB configuration
type Config struct {
	Path     string
	LogLevel logger.LogLevel
	Log      zerolog.Logger
	// Models are automigrated on open.
	Models []any
}

// ClientModels is the schema of the desktop/terminal client database.
func ClientModels() []any {
	return []any{&models.AppSettings{}, &models.ProjectRecord{}}
}

// ServerModels is the schema of the Story API database.
func ServerModels() []any {
	return []any{
		&models.UserAccount{},
		&models.ProjectRecord{},
		&models.ChatRecord{},
		&models.ChatMessageRecord{},
	}
}

// Init opens a SQLite DB and runs migrations
func Init(cfg Config) (*gorm.DB, error) {
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Warn
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", cfg.Path)
	if cfg.Path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=ON"
	}

	gormLogger := logger.New(
		logging.GormWriter{Log: cfg.Log},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows one writer; a single connection avoids "database is locked"
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := migrate(db, cfg.Models); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB, schema []any) error {
	if len(schema) == 0 {
		return nil
	}
	if err := db.AutoMigrate(schema...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
