package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	registerOnce                   sync.Once
	metricsRouter                  *chi.Mux
	clientRequestDurationHistogram *prometheus.HistogramVec
	graphqlLatency                 *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	chartBuildDuration             *prometheus.HistogramVec
	staleResponseCounter           prometheus.Counter
	openViewsGauge                 prometheus.Gauge
	currentEraGauge                prometheus.Gauge
)

// Init initializes the metrics package and serves /metrics on metricsPort.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		Register()
	})
}

// Register registers the collectors without starting the metrics server.
// Safe to call more than once.
func Register() {
	registerOnce.Do(registerMetrics)
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	graphqlLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphql_client_latency_seconds",
			Help:    "Histogram of GraphQL operations durations in seconds, retries included.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	chartBuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_build_duration_seconds",
			Help:    "Time spent fetching and normalizing a stake chart.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"mode", "status"},
	)

	staleResponseCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chart_stale_response_count",
			Help: "Number of chart results dropped because a newer request superseded them",
		},
	)

	openViewsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chart_open_views",
			Help: "Number of open chart views",
		},
	)

	currentEraGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "current_era",
			Help: "Last value of the current era index",
		},
	)

	prometheus.MustRegister(
		clientRequestDurationHistogram,
		graphqlLatency,
		pollerDurationHistogram,
		chartBuildDuration,
		staleResponseCounter,
		openViewsGauge,
		currentEraGauge,
	)
}

func RecordGraphQLLatency(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	graphqlLatency.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordChartBuildDuration(d time.Duration, mode string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	chartBuildDuration.WithLabelValues(mode, status.String()).Observe(d.Seconds())
}

func IncStaleResponses() {
	staleResponseCounter.Inc()
}

func RecordOpenViews(count int) {
	openViewsGauge.Set(float64(count))
}

func RecordCurrentEra(index uint64) {
	currentEraGauge.Set(float64(index))
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
