// Package metrics provides the central Prometheus registry reference for the
// shop API. Metrics are defined in their owning packages (cache, api) to
// maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the shop API.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - shop_cache_hits_total{layer="redis"} (Counter): Page cache hits by layer
//   - shop_cache_misses_total (Counter): Page cache misses
//   - shop_cache_size_bytes{layer="redis"} (Gauge): Page cache size in bytes
//   - shop_cache_invalidations_total (Counter): Prefix invalidation runs
//   - shop_cache_errors_total{operation} (Counter): Cache operation errors
//
// Request Metrics (internal/api):
//   - shop_requests_total{path, method, status} (Counter): HTTP requests
//   - shop_request_duration_seconds{path} (Histogram): Request duration
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(shop_cache_hits_total[5m])) /
//   (sum(rate(shop_cache_hits_total[5m])) + sum(rate(shop_cache_misses_total[5m])))
//
//   # Request Error Rate
//   sum(rate(shop_requests_total{status=~"5.."}[5m]))
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(shop_request_duration_seconds_bucket[5m]))
