package main

import (
	"context"                          // context package is needed for Redis operations
	"irys_gallery/internal/api"        // Custom package for API handlers
	"irys_gallery/internal/config"     // Custom package for configuration
	"irys_gallery/internal/db"         // Custom package for database access
	"irys_gallery/internal/middleware" // Custom package for middleware
	"irys_gallery/internal/utils"      // Custom package for wallet locks

	"github.com/gin-gonic/gin"                                  // Gin web framework
	"github.com/prometheus/client_golang/prometheus"            // Prometheus registry
	"github.com/prometheus/client_golang/prometheus/collectors" // Runtime collectors
	"github.com/prometheus/client_golang/prometheus/promhttp"   // Metrics HTTP handler
	"github.com/redis/go-redis/v9"                              // Redis client
	"github.com/sirupsen/logrus"                                // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err) // Refuse to start without a store
	}

	// Setup logger
	setupLogger(cfg)

	// Connect to the database
	gdb, err := db.Open(cfg.DatabaseURL, cfg.DB)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Pick the wallet locker
	var locker utils.Locker = utils.NewKeyedMutex() // In-process by default
	if cfg.UseRedis() {
		// Setup Redis client
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		locker = utils.NewRedisLocker(redisClient, cfg.WalletLockTTL) // Shared across processes
	}
	store := db.NewStore(gdb, locker)

	// Setup metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := api.NewRouter(api.RouterConfig{
		Store:          store,                                            // Data layer
		Metrics:        metrics,                                          // Request metrics
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), // Scrape endpoint
		AllowedOrigins: cfg.AllowedOrigins,                               // CORS origins
		RedactErrors:   cfg.RedactErrors,                                 // Error body policy
		EnablePprof:    !cfg.IsProd,                                      // Profiling outside production
		Log:            logrus.StandardLogger(),                          // Access log
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":  cfg.AppPort,    // Listen port
		"redis": cfg.UseRedis(), // Distributed locking enabled
	}).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}

// setupLogger configures the global logrus logger from the config
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable logs in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
