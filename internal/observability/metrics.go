package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_health_http_requests_total",
			Help: "Total HTTP requests by status code",
		}, []string{"code"},
	)
	Latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "campaign_health_http_request_duration_seconds",
		Help:    "Request latency seconds",
		Buckets: prometheus.DefBuckets,
	})
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campaign_health_http_in_flight",
		Help: "In-flight HTTP requests",
	})

	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_health_evaluations_total",
			Help: "Campaign evaluations by outcome (ok, invalid)",
		}, []string{"outcome"},
	)
	IssuesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_health_issues_total",
			Help: "Detected issues by type and severity",
		}, []string{"type", "severity"},
	)
	AdvisorRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_health_advisor_requests_total",
			Help: "Advisory calls by result (ok, error, empty)",
		}, []string{"result"},
	)
	AdvisorLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "campaign_health_advisor_duration_seconds",
		Help:    "Advisory call latency seconds",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	})
	AdvisorCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_health_advisor_cache_total",
			Help: "Advisory cache lookups by result (hit, miss, error)",
		}, []string{"result"},
	)
	AnalysisPersistFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campaign_health_analysis_persist_failures_total",
		Help: "Advisory analyses that could not be stored",
	})
)

func init() {
	prometheus.MustRegister(
		RequestsTotal, Latency, InFlight,
		EvaluationsTotal, IssuesTotal,
		AdvisorRequestsTotal, AdvisorLatency, AdvisorCacheTotal,
		AnalysisPersistFailures,
	)
}

func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Measure records latency, in-flight count and status code of every request.
func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		InFlight.Inc()
		defer InFlight.Dec()

		rr := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rr, r)

		Latency.Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(strconv.Itoa(rr.code)).Inc()
	})
}
