package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters registered on the default Prometheus registry.
var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cache_hits_total",
		Help: "Number of cache-aside hits by key prefix.",
	}, []string{"prefix"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cache_misses_total",
		Help: "Number of cache-aside misses by key prefix.",
	}, []string{"prefix"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Number of Redis command errors by command.",
	}, []string{"command"})

	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cascade_deletes_total",
		Help: "Number of cascade delete operations by entity.",
	}, []string{"entity"})
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware for HTTP metrics.
// The instance is shared because its collectors register on the default
// Prometheus registry, which rejects duplicates.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
