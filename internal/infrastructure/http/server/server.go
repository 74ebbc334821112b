// Package server provides the HTTP server and route table for the shop
// API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/naturalbakery/shop/internal/infrastructure/config"
	"github.com/naturalbakery/shop/internal/infrastructure/http/handlers"
	"github.com/naturalbakery/shop/internal/infrastructure/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	guard *middleware.Guard,
	catalogHandlers *handlers.CatalogHandlers,
	orderHandlers *handlers.OrderHandlers,
	authHandlers *handlers.AuthHandlers,
	contentHandlers *handlers.ContentHandlers,
	healthHandlers *handlers.HealthHandlers,
) *Server {
	s := &Server{
		config: cfg,
		logger: logger.Named("http-server"),
	}

	s.router = s.setupRouter(guard, catalogHandlers, orderHandlers, authHandlers, contentHandlers, healthHandlers)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	// HTTP/2 for clients that negotiate it.
	if err := http2.ConfigureServer(s.server, &http2.Server{}); err != nil {
		s.logger.Warn("Failed to configure HTTP/2", zap.Error(err))
	}

	return s
}

// setupRouter configures the router with middleware and routes
func (s *Server) setupRouter(
	guard *middleware.Guard,
	catalogHandlers *handlers.CatalogHandlers,
	orderHandlers *handlers.OrderHandlers,
	authHandlers *handlers.AuthHandlers,
	contentHandlers *handlers.ContentHandlers,
	healthHandlers *handlers.HealthHandlers,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config))
	}
	if s.config.RateLimit.Enable {
		r.Use(middleware.RateLimit(s.config))
	}
	if s.config.Monitoring.EnableMetrics {
		r.Use(middleware.NewMetrics().Instrument())
	}
	if s.config.Monitoring.EnableTracing {
		r.Use(middleware.Tracing(s.config.App.Name))
	}
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))

	r.Get("/health", healthHandlers.Health)
	if s.config.Monitoring.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		// Public catalog reads
		r.Get("/recipes", catalogHandlers.ListRecipes)
		r.Get("/recipes/{id}", catalogHandlers.GetRecipe)
		r.Get("/ingredients", catalogHandlers.ListIngredients)
		r.Get("/ingredients/{id}", catalogHandlers.GetIngredient)

		// Public order placement
		r.Post("/orders", orderHandlers.CreateOrder)

		// Generated content
		r.Post("/recipes/{id}/arrange", contentHandlers.Arrange)
		r.Get("/trends", contentHandlers.Trends)
		r.Get("/local-shops", contentHandlers.LocalShops)

		// Authentication
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandlers.Register)
			r.Post("/login", authHandlers.Login)
			r.Post("/logout", authHandlers.Logout)

			r.Group(func(r chi.Router) {
				r.Use(guard.RequireSession)
				r.Get("/me", authHandlers.Me)
			})
		})

		// Admin catalog writes and order console
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAdmin)

			r.Post("/recipes", catalogHandlers.CreateRecipe)
			r.Put("/recipes/{id}", catalogHandlers.UpdateRecipe)
			r.Delete("/recipes/{id}", catalogHandlers.DeleteRecipe)

			r.Get("/orders", orderHandlers.ListOrders)
			r.Get("/orders/{id}", orderHandlers.GetOrder)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/customers", orderHandlers.ListCustomers)
				r.Get("/orders", orderHandlers.ListOrders)
				r.Get("/orders/{id}", orderHandlers.GetOrder)
			})
		})
	})

	return r
}

// Start begins listening for requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
