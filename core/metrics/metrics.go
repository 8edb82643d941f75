package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog_sync"

var (
	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// FeedFetchDuration observes feed fetch latency by outcome.
	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of upstream feed fetches in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"feed", "result"},
	)

	// CyclesTotal counts finished sync cycles.
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Total number of sync cycles by outcome",
		},
		[]string{"result"},
	)

	// CycleDuration observes a whole cycle.
	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Duration of sync cycles in seconds",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// CyclesSkipped counts triggers rejected because a cycle was in flight.
	CyclesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_skipped_total",
			Help:      "Total number of sync triggers skipped while a cycle was running",
		},
	)

	// ReconcilerRuns counts reconciler passes.
	ReconcilerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciler_runs_total",
			Help:      "Total number of reconciler passes by outcome",
		},
		[]string{"reconciler", "result"},
	)

	// RecordsReconciled counts per-entity upsert outcomes of committed passes.
	RecordsReconciled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_reconciled_total",
			Help:      "Total number of reconciled records by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	// LastSuccess holds the unix time of the last fully successful cycle.
	LastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last sync cycle where every reconciler committed",
		},
	)
)

// ObserveFetch records one feed fetch.
func ObserveFetch(feed, result string, d time.Duration) {
	FeedFetchDuration.WithLabelValues(feed, result).Observe(d.Seconds())
}

// ObserveReconciler records one reconciler pass.
func ObserveReconciler(name string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ReconcilerRuns.WithLabelValues(name, result).Inc()
}

// AddRecords adds committed per-entity outcome counts.
func AddRecords(entity string, created, updated, skipped int) {
	if created > 0 {
		RecordsReconciled.WithLabelValues(entity, "created").Add(float64(created))
	}
	if updated > 0 {
		RecordsReconciled.WithLabelValues(entity, "updated").Add(float64(updated))
	}
	if skipped > 0 {
		RecordsReconciled.WithLabelValues(entity, "skipped").Add(float64(skipped))
	}
}

// ObserveCycle records a finished cycle.
func ObserveCycle(ok bool, d time.Duration, finished time.Time) {
	CycleDuration.Observe(d.Seconds())
	if ok {
		CyclesTotal.WithLabelValues("ok").Inc()
		LastSuccess.Set(float64(finished.Unix()))
		return
	}
	CyclesTotal.WithLabelValues("partial").Inc()
}

// classifyStatus folds status codes into their class to bound cardinality.
func classifyStatus(code int) string {
	if code < 100 || code > 599 {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code/100) + "xx"
}

// Middleware records request count and latency by matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(c.Method(), route, classifyStatus(status)).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
