package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics счетчики запросов к API. Нулевой указатель допустим: учет отключен.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics регистрирует коллекторы в переданном реестре.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wishfox",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests issued by the client, by route and status class.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wishfox",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request latency as seen by the client.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.latency)
	}
	return m
}

func (m *Metrics) observe(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	route := routeTemplate(path)
	m.requests.WithLabelValues(method, route, status).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// routeTemplate сворачивает id и handles в плейсхолдеры, чтобы не плодить метки
func routeTemplate(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			parts[i] = ":id"
			continue
		}
		if i > 0 && (parts[i-1] == "users" || parts[i-1] == "subscriptions") {
			parts[i] = ":handle"
		}
	}
	return "/" + strings.Join(parts, "/")
}
