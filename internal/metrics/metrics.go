// Package metrics собирает метрики Prometheus сервиса коротких ссылок.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shortlinks"

// Metrics набор метрик приложения на собственном реестре.
// Реализует services.MetricsRecorder.
type Metrics struct {
	registry *prometheus.Registry

	linksCreated      prometheus.Counter
	slugCollisions    prometheus.Counter
	visitsRecorded    prometheus.Counter
	visitRecordErrors prometheus.Counter
	requests          *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		linksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_created_total",
			Help:      "Number of short links created.",
		}),
		slugCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slug_collisions_total",
			Help:      "Number of generated slugs rejected as already taken.",
		}),
		visitsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visits_recorded_total",
			Help:      "Number of visits recorded on redirect.",
		}),
		visitRecordErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visit_record_errors_total",
			Help:      "Number of redirects served without a recorded visit.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.linksCreated,
		m.slugCollisions,
		m.visitsRecorded,
		m.visitRecordErrors,
		m.requests,
		m.requestDuration,
	)
	return m
}

func (m *Metrics) LinkCreated()       { m.linksCreated.Inc() }
func (m *Metrics) SlugCollision()     { m.slugCollisions.Inc() }
func (m *Metrics) VisitRecorded()     { m.visitsRecorded.Inc() }
func (m *Metrics) VisitRecordFailed() { m.visitRecordErrors.Inc() }

// ObserveRequest учитывает обработанный HTTP запрос. route шаблон маршрута, а не фактический путь,
// чтобы слаги не раздували кардинальность.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler отдает метрики в формате Prometheus. Сжатием ответа занимается GzipMiddleware.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry, DisableCompression: true})
}
