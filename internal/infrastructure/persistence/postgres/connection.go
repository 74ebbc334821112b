// Package postgres provides the PostgreSQL connection for production
// deployments, with optional read replicas behind GORM's dbresolver.
package postgres

import (
	"fmt"
	"time"

	"github.com/naturalbakery/shop/internal/infrastructure/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// NewConnection opens a PostgreSQL connection pool from configuration.
func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:                 gormLogLevel(cfg),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if len(cfg.Database.ReadReplicas) > 0 {
		if err := registerReplicas(db, cfg); err != nil {
			return nil, err
		}
		logger.Info("Read replicas registered",
			zap.Int("count", len(cfg.Database.ReadReplicas)),
		)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Database),
	)

	return db, nil
}

// registerReplicas routes reads to the configured replica DSNs while all
// writes stay on the primary.
func registerReplicas(db *gorm.DB, cfg *config.Config) error {
	replicas := make([]gorm.Dialector, len(cfg.Database.ReadReplicas))
	for i, dsn := range cfg.Database.ReadReplicas {
		replicas[i] = postgres.Open(dsn)
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	resolver = resolver.
		SetConnMaxLifetime(cfg.Database.ConnMaxLifetime).
		SetMaxOpenConns(cfg.Database.MaxOpenConns).
		SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := db.Use(resolver); err != nil {
		return fmt.Errorf("failed to register read replicas: %w", err)
	}
	return nil
}

func gormLogLevel(cfg *config.Config) gormlogger.Interface {
	if cfg.IsDevelopment() {
		return gormlogger.Default.LogMode(gormlogger.Info)
	}
	return gormlogger.Default.LogMode(gormlogger.Warn)
}
