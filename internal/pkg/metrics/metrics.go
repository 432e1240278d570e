package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "venue_booking"

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	bookingOutcomes     *prometheus.CounterVec
	revenuePostFailures prometheus.Counter
	outboxJobs          *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "operations_total",
			Help:      "Booking lifecycle operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		revenuePostFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "revenue",
			Name:      "posting_failures_total",
			Help:      "Revenue postings deferred to the outbox after a failure.",
		}),
		outboxJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "jobs_total",
			Help:      "Outbox jobs handled by kind and result.",
		}, []string{"kind", "result"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookingOutcomes, m.revenuePostFailures, m.outboxJobs)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.bookingOutcomes.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RevenuePostingFailed() {
	m.revenuePostFailures.Inc()
}

func (m *Metrics) OutboxJob(kind, result string) {
	m.outboxJobs.WithLabelValues(kind, result).Inc()
}

// OutboxCounter counts outbox jobs in one status.
type OutboxCounter func(ctx context.Context, status string) (int64, error)

const outboxScrapeTimeout = 2 * time.Second

// WatchOutbox exports the number of jobs waiting in and parked out of the
// outbox, read on every scrape.
func (m *Metrics) WatchOutbox(count OutboxCounter) {
	for _, status := range []string{"queued", "failed"} {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "outbox",
			Name:        "jobs",
			Help:        "Outbox jobs by status.",
			ConstLabels: prometheus.Labels{"status": status},
		}, func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), outboxScrapeTimeout)
			defer cancel()
			n, err := count(ctx, status)
			if err != nil {
				slog.Warn("outbox gauge read failed", "status", status, "error", err.Error())
				return 0
			}
			return float64(n)
		}))
	}
}
