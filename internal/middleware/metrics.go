package middleware

import (
	"strconv" // Status code labels
	"time"    // Request latency

	"github.com/gin-gonic/gin"                       // Gin web framework
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	requests *prometheus.CounterVec   // Requests by route, method and status
	duration *prometheus.HistogramVec // Latency by route, method and status
	connects *prometheus.CounterVec   // Wallet connects by outcome
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gallery_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		connects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_wallet_connects_total",
			Help: "Wallet connects by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.requests, m.duration, m.connects)
	return m
}

// Middleware records request count and latency; unmatched routes share one label
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath() // Route template, not the raw path
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(route, c.Request.Method, status).Inc()
		m.duration.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}

// RecordConnect counts a wallet connect as created or existing
func (m *Metrics) RecordConnect(created bool) {
	outcome := "existing"
	if created {
		outcome = "created"
	}
	m.connects.WithLabelValues(outcome).Inc()
}
