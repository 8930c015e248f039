// Package metrics provides the Prometheus registry and scrape handler for the
// catalog service. All metrics are defined in their respective packages
// (client, cache, catalog) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by the catalog service.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the registry the scrape handler reads from.
var Gatherer = prometheus.DefaultGatherer

// Handler returns the HTTP handler serving /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - pokeapi_cache_hits_total{layer} (Counter): Cache hits by layer (memory, redis)
//   - pokeapi_cache_misses_total{layer} (Counter): Cache misses by layer
//   - pokeapi_cache_errors_total{operation} (Counter): Cache operation errors
//
// Request Metrics (pkg/client):
//   - pokeapi_requests_total{resource, status} (Counter): Requests by resource kind and HTTP status ("cache" for hits)
//   - pokeapi_request_duration_seconds{resource} (Histogram): Request duration by resource kind
//   - pokeapi_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network, decode)
//
// Catalog Metrics (pkg/catalog):
//   - catalog_fetches_total{dimension, outcome} (Counter): Fetch operations by dimension and outcome
//   - catalog_items_dropped_total{stage} (Counter): Candidates dropped because a detail or species call failed
//   - catalog_fetch_duration_seconds{dimension} (Histogram): End-to-end fetch latency
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(pokeapi_cache_hits_total[5m])) /
//   (sum(rate(pokeapi_cache_hits_total[5m])) + sum(rate(pokeapi_cache_misses_total[5m])))
//
//   # Seed Failure Rate
//   sum(rate(catalog_fetches_total{outcome="seed_error"}[5m])) / sum(rate(catalog_fetches_total[5m]))
//
//   # Dropped Items per Fetch
//   rate(catalog_items_dropped_total[5m]) / rate(catalog_fetches_total[5m])
//
//   # P95 Fetch Latency
//   histogram_quantile(0.95, rate(catalog_fetch_duration_seconds_bucket[5m]))
