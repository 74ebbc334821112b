// Package sqlite provides the SQLite connection used for development and
// tests.
package sqlite

import (
	"fmt"
	"time"

	"github.com/naturalbakery/shop/internal/infrastructure/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens a SQLite database. cfg.Database.Database is the
// file path; ":memory:" yields an ephemeral database.
func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.Database.Database
	if dsn != ":memory:" {
		// Foreign keys are off by default in SQLite.
		dsn = fmt.Sprintf("%s?_foreign_keys=on", dsn)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids lock errors.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	logger.Info("Connected to SQLite", zap.String("path", cfg.Database.Database))

	return db, nil
}
