package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RosterCounters exposes live collection sizes to the metrics gauges.
type RosterCounters struct {
	Students func() int
	Teachers func() int
	Batches  func() int
}

// MetricsService encapsulates Prometheus instrumentation for the admin API.
type MetricsService struct {
	registry                *prometheus.Registry
	handler                 http.Handler
	requestDuration         *prometheus.HistogramVec
	requestTotal            *prometheus.CounterVec
	enrollmentNotifications prometheus.Counter
}

// NewMetricsService registers the core collectors. The roster gauges read
// straight from the stores on scrape.
func NewMetricsService(counters RosterCounters) *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	enrollmentNotifications := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrollment_notifications_total",
		Help: "Enrollment events forwarded to the course directory",
	})

	collectors := []prometheus.Collector{requestDuration, requestTotal, enrollmentNotifications}

	gauge := func(name, help string, read func() int) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
			if read == nil {
				return 0
			}
			return float64(read())
		})
	}
	collectors = append(collectors,
		gauge("roster_students_total", "Students currently on the roster", counters.Students),
		gauge("roster_teachers_total", "Teachers currently on the roster", counters.Teachers),
		gauge("roster_batches_total", "Batches currently defined", counters.Batches),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "goroutines_total",
			Help: "Total number of goroutines",
		}, func() float64 {
			return float64(runtime.NumGoroutine())
		}),
	)

	registry.MustRegister(collectors...)

	return &MetricsService{
		registry:                registry,
		handler:                 promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:         requestDuration,
		requestTotal:            requestTotal,
		enrollmentNotifications: enrollmentNotifications,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// IncEnrollmentNotification counts one enrollment event forwarded to the
// course directory. Duplicate notifications from repeated AssignCourse calls
// are counted too.
func (m *MetricsService) IncEnrollmentNotification() {
	if m == nil {
		return
	}
	m.enrollmentNotifications.Inc()
}
