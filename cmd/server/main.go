package main

import (
	"context"   // Seed and shutdown deadlines
	"errors"    // Server closed check
	"net/http"  // HTTP server and seed client
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"sales_dashboard/internal/api"        // Custom package for API handlers
	"sales_dashboard/internal/config"     // Custom package for configuration
	"sales_dashboard/internal/db"         // Custom package for database connection
	"sales_dashboard/internal/middleware" // Custom package for middleware
	"sales_dashboard/internal/service"    // Custom package for services
	"sales_dashboard/internal/store"      // Custom package for store backends

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	st := openStore(cfg) // Never nil: falls back to a failing store

	// Seed before the listener starts so no request sees a half-filled store
	if cfg.SeedOnStart {
		seed(cfg, st)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORSMiddleware())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, api.NewServices(st)) // Dashboard routes

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.WithField("port", cfg.AppPort).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logrus.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown: %v", err)
	}
}

// openStore picks the configured backend. A database that cannot be reached is
// logged and replaced by a store that fails every call, so the API still answers.
func openStore(cfg *config.Config) service.Store {
	if cfg.StoreBackend == config.BackendMemory {
		logrus.Warn("Using in-memory store, data is lost on exit")
		return store.NewMemoryStore()
	}
	gdb, err := db.Connect(cfg.DSN())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"host":  cfg.DBHost, // Database host
			"db":    cfg.DBName, // Database name
			"error": err.Error(),
		}).Error("Failed to connect to DB, serving without data")
		return store.Unavailable(err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.WithField("error", err.Error()).Error("Migration failed, serving without data")
		return store.Unavailable(err)
	}
	logrus.Info("Connected to MySQL")
	return store.NewMySQLStore(gdb)
}

// seed loads the remote dataset; failures are logged and the server still starts
func seed(cfg *config.Config, st service.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SeedTimeout)
	defer cancel()
	logrus.WithField("url", cfg.SeedURL).Info("Initializing database with seed data...")
	seeder := service.NewSeeder(st, &http.Client{Timeout: cfg.SeedTimeout}, cfg.SeedURL)
	msg, err := seeder.Initialize(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Error initializing the database")
		return
	}
	logrus.Info(msg)
}
