package api

import (
	"net/http" // HTTP status codes
	"time"     // CORS preflight cache

	"irys_gallery/internal/domain"     // Typed errors
	"irys_gallery/internal/middleware" // Custom middleware

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-contrib/pprof" // Profiling routes
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/sirupsen/logrus"   // Logging library
)

// GalleryStore is everything the routes need from the data layer
type GalleryStore interface {
	UserStore
	ArtworkStore
	Pinger
}

// RouterConfig holds the router dependencies
type RouterConfig struct {
	Store          GalleryStore        // Data layer
	Metrics        *middleware.Metrics // Prometheus collectors, optional
	MetricsHandler http.Handler        // Serves /metrics when set
	AllowedOrigins []string            // CORS origins, empty allows all
	RedactErrors   bool                // Hide store messages in 5xx bodies
	EnablePprof    bool                // Mount /debug/pprof
	Log            logrus.FieldLogger  // Access log destination
}

// NewRouter builds the gin engine with middleware and all routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New() // Gin router instance
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(cfg.Log)) // Base middleware
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // Request metrics
	}
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins))) // Browser clients

	// Health routes
	r.GET("/api/health", HealthHandler())                          // Liveness probe
	r.GET("/api/ready", ReadyHandler(cfg.Store, cfg.RedactErrors)) // Readiness probe

	// Gallery routes
	var observer ConnectObserver
	if cfg.Metrics != nil {
		observer = cfg.Metrics
	}
	r.POST("/api/users/connect", ConnectWalletHandler(cfg.Store, observer, cfg.RedactErrors)) // Wallet connect endpoint
	r.GET("/api/artworks", ListArtworksHandler(cfg.Store, cfg.RedactErrors))                   // Artwork listing endpoint

	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler)) // Prometheus scrape endpoint
	}
	if cfg.EnablePprof {
		pprof.Register(r) // Profiling under /debug/pprof
	}

	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, &domain.NotFoundError{Resource: "route"}, cfg.RedactErrors)
	})
	return r
}

// corsConfig allows every origin unless a list is configured
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
