// README: Prometheus metric definitions.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NegotiationsCreated = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fareline", Name: "negotiations_created_total", Help: "Total negotiations created"})
	NegotiationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fareline", Name: "negotiation_outcomes_total", Help: "Negotiation transitions by resulting status"},
		[]string{"status"},
	)
	WeatherCacheHits   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fareline", Name: "weather_cache_hits_total", Help: "Weather readings served from cache"})
	WeatherFetches     = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fareline", Name: "weather_upstream_fetches_total", Help: "Weather readings fetched upstream"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fareline", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fareline",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
