package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nexushub"

// Application outcomes recorded by ObserveApplication
const (
	OutcomeAccepted  = "accepted"
	OutcomeFull      = "full"
	OutcomeDuplicate = "duplicate"
	OutcomeNotFound  = "not_found"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Metrics owns a private registry so tests can create as many instances as they like
type Metrics struct {
	registry *prometheus.Registry

	internshipApplyClicks  *prometheus.CounterVec
	mentorshipApplications *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
}

// New registers the application collectors plus the Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		internshipApplyClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "internship_apply_clicks_total",
			Help:      "Clicks on an internship's external application link. Not persisted.",
		}, []string{"internship_id"}),
		mentorshipApplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mentorship_applications_total",
			Help:      "Mentorship application attempts by outcome.",
		}, []string{"outcome"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.internshipApplyClicks,
		m.mentorshipApplications,
		m.httpRequestDuration,
	)
	return m
}

// IncInternshipApply counts one click on an internship's application link
func (m *Metrics) IncInternshipApply(internshipID int64) {
	m.internshipApplyClicks.WithLabelValues(strconv.FormatInt(internshipID, 10)).Inc()
}

// ObserveApplication counts one mentorship application attempt
func (m *Metrics) ObserveApplication(outcome string) {
	m.mentorshipApplications.WithLabelValues(outcome).Inc()
}

// Handler serves the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request latency labelled by the matched route pattern, never the raw path
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
