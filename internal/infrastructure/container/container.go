// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"fmt"

	appauth "github.com/naturalbakery/shop/internal/application/auth"
	appcatalog "github.com/naturalbakery/shop/internal/application/catalog"
	apporder "github.com/naturalbakery/shop/internal/application/order"
	"github.com/naturalbakery/shop/internal/infrastructure/config"
	"github.com/naturalbakery/shop/internal/infrastructure/content"
	"github.com/naturalbakery/shop/internal/infrastructure/http/handlers"
	"github.com/naturalbakery/shop/internal/infrastructure/http/middleware"
	"github.com/naturalbakery/shop/internal/infrastructure/http/server"
	"github.com/naturalbakery/shop/internal/infrastructure/monitoring"
	gormRepo "github.com/naturalbakery/shop/internal/infrastructure/persistence/gorm"
	"github.com/naturalbakery/shop/internal/infrastructure/persistence/memory"
	"github.com/naturalbakery/shop/internal/infrastructure/persistence/migrations"
	"github.com/naturalbakery/shop/internal/infrastructure/persistence/postgres"
	"github.com/naturalbakery/shop/internal/infrastructure/persistence/redis"
	"github.com/naturalbakery/shop/internal/infrastructure/persistence/sqlite"
	"github.com/naturalbakery/shop/internal/ports/inbound"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"github.com/naturalbakery/shop/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection, schema and seed data
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		var (
			db  *gorm.DB
			err error
		)

		switch cfg.Database.Driver {
		case "postgres":
			db, err = postgres.NewConnection(cfg, log)
			if err != nil {
				return nil, err
			}
			if cfg.Database.AutoMigrate {
				if err := migrations.Run(db, log); err != nil {
					return nil, err
				}
			}
		case "sqlite":
			db, err = sqlite.NewConnection(cfg, log)
			if err != nil {
				return nil, err
			}
			if cfg.Database.AutoMigrate {
				if err := gormRepo.AutoMigrate(db); err != nil {
					return nil, fmt.Errorf("failed to migrate schema: %w", err)
				}
			}
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}

		if cfg.Database.SeedDemoData {
			if err := gormRepo.Seed(db, cfg.Auth.BCryptCost, log); err != nil {
				log.Warn("Failed to seed demo data", zap.Error(err))
			}
		}

		return db, nil
	},
)

// CacheModule provides the cache repository, Redis when enabled and the
// in-memory fallback otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			client, err := redis.NewClient(cfg)
			if err != nil {
				return nil, err
			}
			log.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr()))
			return redis.NewCacheRepository(client, log), nil
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewIngredientRepository,
	gormRepo.NewOrderRepository,
	gormRepo.NewUserRepository,
	gormRepo.NewSessionRepository,
)

// ServiceModule provides application services and the content provider
var ServiceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.ContentProvider {
		// "static" is the only shipped provider; the switch is the seam
		// for a generative backend.
		return content.NewStaticProvider()
	},

	fx.Annotate(
		func(
			recipes outbound.RecipeRepository,
			ingredients outbound.IngredientRepository,
			cache outbound.CacheRepository,
			cfg *config.Config,
			log *zap.Logger,
		) *appcatalog.Service {
			return appcatalog.NewService(recipes, ingredients, cache, cfg.Redis.CatalogTTL, log)
		},
		fx.As(new(inbound.CatalogService)),
	),

	fx.Annotate(
		apporder.NewService,
		fx.As(new(inbound.OrderService)),
	),

	fx.Annotate(
		func(
			users outbound.UserRepository,
			sessions outbound.SessionRepository,
			cfg *config.Config,
			log *zap.Logger,
		) *appauth.Service {
			return appauth.NewService(users, sessions, cfg.Auth.SessionTTL, cfg.Auth.BCryptCost, log)
		},
		fx.As(new(inbound.AuthService)),
	),
)

// HTTPModule provides the HTTP server, handlers and guard
var HTTPModule = fx.Provide(
	func(authService inbound.AuthService, cfg *config.Config, log *zap.Logger) *middleware.Guard {
		return middleware.NewGuard(authService, cfg.Auth.SessionCookie, log)
	},
	handlers.NewCatalogHandlers,
	handlers.NewOrderHandlers,
	func(authService inbound.AuthService, cfg *config.Config, log *zap.Logger) *handlers.AuthHandlers {
		return handlers.NewAuthHandlers(authService, cfg.Auth.SessionCookie, log)
	},
	handlers.NewContentHandlers,
	func(db *gorm.DB, cfg *config.Config) *handlers.HealthHandlers {
		return handlers.NewHealthHandlers(db, cfg.App.Version)
	},
	server.NewServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks wires startup and shutdown of the HTTP server,
// tracing and the database connection.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	var shutdownTracing func(context.Context) error

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			var err error
			shutdownTracing, err = monitoring.InitTracing(cfg, log)
			if err != nil {
				return err
			}

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if shutdownTracing != nil {
				if err := shutdownTracing(ctx); err != nil {
					log.Error("Failed to flush traces", zap.Error(err))
				}
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
