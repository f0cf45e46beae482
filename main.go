// Package main provides the main entry point for the lead-desk API server
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirphl/lead-desk/app/handlers"
	"github.com/amirphl/lead-desk/app/middleware"
	"github.com/amirphl/lead-desk/app/router"
	"github.com/amirphl/lead-desk/app/services"
	businessflow "github.com/amirphl/lead-desk/business_flow"
	"github.com/amirphl/lead-desk/config"
	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Application represents the main application structure
type Application struct {
	router    router.Router
	config    *config.ProductionConfig
	stopFuncs []func()
}

func main() {
	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logOut, closeLogs, err := setupLogging(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLogs()

	log.Printf("Starting lead-desk %s (%s, commit %s)...", cfg.Deployment.Version, cfg.Deployment.Environment, cfg.Deployment.CommitHash)

	// Initialize application
	app, err := initializeApplication(cfg, logOut)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		if err := app.router.Start(cfg.Server.Address()); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.router.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	// Release connections after in-flight requests have drained
	for _, fn := range app.stopFuncs {
		fn()
	}

	log.Println("Server stopped")
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig, logLevel string) (*gorm.DB, error) {
	gormLogger := logger.New(log.Default(), logger.Config{
		SlowThreshold:             cfg.SlowQueryTime,
		LogLevel:                  gormLogLevel(logLevel),
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pooling
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.Account{}, &models.Lead{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	log.Printf("Database connection established to %s:%d/%s", cfg.Host, cfg.Port, cfg.Name)
	return db, nil
}

// gormLogLevel maps LOG_LEVEL onto GORM's logger; SQL statements are only traced at debug
func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "warn", "info":
		return logger.Warn
	default:
		return logger.Error
	}
}

// initializeCache connects to redis when the cache is enabled; it returns nil otherwise
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	// Override DB if provided in config
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established (db=%d)", cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeApplication wires repositories, flows, handlers and the router
func initializeApplication(cfg *config.ProductionConfig, logOut io.Writer) (*Application, error) {
	db, err := initializeDatabase(cfg.Database, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	app := &Application{config: cfg}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	app.stopFuncs = append(app.stopFuncs, func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})

	healthChecks := map[string]handlers.HealthCheck{
		"database": sqlDB.PingContext,
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	denylist := services.NewNoopTokenDenylist()
	if rc != nil {
		healthChecks["redis"] = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
		app.stopFuncs = append(app.stopFuncs, startCacheHealthMonitor(context.Background(), rc, 30*time.Second), func() {
			_ = rc.Close()
		})
		if cfg.Cache.SessionRevocation {
			denylist = services.NewRedisTokenDenylist(rc, cfg.Cache.RedisPrefix)
			log.Println("Session revocation enabled")
		}
	}

	tokenService, err := services.NewTokenService(
		cfg.JWT.SessionTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// Business flows
	authFlow := businessflow.NewAuthFlow(accountRepo, tokenService, denylist, cfg.Security.BcryptCost)
	profileFlow := businessflow.NewProfileFlow(accountRepo, cfg.Security.BcryptCost)
	leadFlow := businessflow.NewLeadFlow(leadRepo)

	app.router = router.NewFiberRouter(cfg, router.Handlers{
		Auth:    handlers.NewAuthHandler(authFlow, cfg.Security.SessionCookieSecure, tokenService.TTL()),
		Profile: handlers.NewProfileHandler(profileFlow),
		Lead:    handlers.NewLeadHandler(leadFlow),
		Health:  handlers.NewHealthHandler("lead-desk-api", cfg.Deployment.Version, healthChecks),
		Guard:   middleware.NewAuthMiddleware(tokenService, denylist),
	}, logOut)

	return app, nil
}
