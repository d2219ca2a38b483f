package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "photo_dashboard"

type collectors struct {
	httpRequestTotal    *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendCallTotal    *prometheus.CounterVec
	backendCallDuration *prometheus.HistogramVec

	staleResponses  prometheus.Counter
	activeSessions  prometheus.Gauge
	notifications   *prometheus.CounterVec
	datasetJobTotal *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *collectors {
	return &collectors{
		httpRequestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendCallTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Calls made to the photo backend by operation and result.",
		}, []string{"operation", "result"}),
		backendCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Photo backend call latency.",
			Buckets: []float64{
				0.005, 0.01, 0.025, 0.05,
				0.1, 0.25, 0.5,
				1, 2.5, 5, 10, 30, 60,
			},
		}, []string{"operation"}),
		staleResponses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_stale_responses_total",
			Help:      "Search responses discarded because a newer request was issued.",
		}),
		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Dashboard sessions currently held in memory.",
		}),
		notifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications raised, by variant.",
		}, []string{"variant"}),
		datasetJobTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_jobs_total",
			Help:      "Dataset ingestion jobs by terminal status.",
		}, []string{"status"}),
	}
})

// ObserveHTTPRequest records one served request
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m := metricsSingleton()
	m.httpRequestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveBackendCall records one backend call; result is "ok", "not_found", "backend_error" or "network_error"
func ObserveBackendCall(operation, result string, elapsed time.Duration) {
	m := metricsSingleton()
	m.backendCallTotal.WithLabelValues(operation, result).Inc()
	m.backendCallDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func IncStaleResponse() {
	metricsSingleton().staleResponses.Inc()
}

func SetActiveSessions(n int) {
	metricsSingleton().activeSessions.Set(float64(n))
}

func IncNotification(variant string) {
	metricsSingleton().notifications.WithLabelValues(variant).Inc()
}

func IncDatasetJob(status string) {
	metricsSingleton().datasetJobTotal.WithLabelValues(status).Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
