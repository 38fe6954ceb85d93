package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmarket",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gigmarket",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gigmarket",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// OffersCreated counts successfully created offers
	OffersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gigmarket",
			Subsystem: "offers",
			Name:      "created_total",
			Help:      "Total number of offers created",
		},
	)

	// OrdersCreated counts successfully created orders by tier
	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmarket",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
		[]string{"offer_type"},
	)

	// OrderTransitions counts order status transitions
	OrderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmarket",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of order status transitions",
		},
		[]string{"status"},
	)

	// ReviewsCreated counts successfully created reviews
	ReviewsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gigmarket",
			Subsystem: "reviews",
			Name:      "created_total",
			Help:      "Total number of reviews created",
		},
	)
)

// statusRecorder captures the response status code for metric labels
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments HTTP requests with count, duration and in-flight
// gauges. The route pattern, not the raw path, is used as the label to keep
// cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := strconv.Itoa(rec.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
