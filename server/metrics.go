package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry         *prometheus.Registry
	Requests         *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	Registrations    prometheus.Counter
	ListingsCreated  prometheus.Counter
	MessagesSent     prometheus.Counter
	RejectedMessages *prometheus.CounterVec
}

// NewMetrics registers collectors on a private registry so several servers
// can coexist in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookxchange_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookxchange_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookxchange_registrations_total",
			Help: "Total number of successful registrations",
		}),
		ListingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookxchange_listings_created_total",
			Help: "Total number of listings created",
		}),
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookxchange_messages_sent_total",
			Help: "Total number of successfully sent messages",
		}),
		RejectedMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookxchange_messages_rejected_total",
				Help: "Messages refused by the messaging rules",
			},
			[]string{"reason"},
		),
	}

	m.Registry.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.Registrations,
		m.ListingsCreated,
		m.MessagesSent,
		m.RejectedMessages,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) observe(method, path string, status int, seconds float64) {
	if path == "" {
		path = "unmatched"
	}
	m.Requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(seconds)
}
