// metrics.go — Prometheus HTTP метрики Registry Service.
// Регистрирует метрики: lf_http_requests_total, lf_http_request_duration_seconds.
// Бизнес-метрики (lf_users_total, lf_items_total, lf_requests_total)
// обновляются из обработчиков при мутациях таблиц.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP метрики
var (
	// httpRequestsTotal — общее количество HTTP-запросов.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lf_http_requests_total",
			Help: "Общее количество HTTP-запросов к Registry Service",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration — гистограмма длительности HTTP-запросов.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lf_http_request_duration_seconds",
			Help:    "Длительность HTTP-запросов к Registry Service в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Бизнес-метрики (экспортируются для обновления из обработчиков)
var (
	// UsersTotal — текущее количество зарегистрированных пользователей (gauge).
	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lf_users_total",
			Help: "Текущее количество зарегистрированных пользователей",
		},
	)

	// ItemsTotal — текущее количество вещей в реестре (gauge).
	ItemsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lf_items_total",
			Help: "Текущее количество вещей в реестре",
		},
		[]string{"status"},
	)

	// RequestsTotal — текущее количество заявок (gauge).
	RequestsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lf_requests_total",
			Help: "Текущее количество заявок",
		},
		[]string{"status"},
	)

	// OperationsTotal — общее количество операций реестра.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lf_operations_total",
			Help: "Общее количество операций реестра",
		},
		[]string{"operation", "result"},
	)
)

// MetricsMiddleware возвращает HTTP middleware для сбора Prometheus метрик.
// Записывает количество запросов и длительность для каждого endpoint.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Нормализуем путь для лейблов метрик
			// (заменяем числовые id на {id} для предотвращения кардинальности)
			normalizedPath := normalizePath(r.URL.Path)

			wrapped := newMetricsResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(wrapped.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, normalizedPath).Observe(duration)
		})
	}
}

// metricsResponseWriter — обёртка для перехвата статус-кода.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newMetricsResponseWriter(w http.ResponseWriter) *metricsResponseWriter {
	return &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap позволяет http.ResponseController получить доступ к оригинальному ResponseWriter.
func (rw *metricsResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath заменяет числовые сегменты пути на {id} для предотвращения
// взрывного роста кардинальности метрик.
// /api/items/42 → /api/items/{id}, /api/requests/7/status → /api/requests/{id}/status
func normalizePath(path string) string {
	switch {
	case path == "/health/live", path == "/health/ready", path == "/metrics":
		return path
	case path == "/api/signup", path == "/api/signin",
		path == "/api/items", path == "/api/requests", path == "/api/users":
		return path
	}

	if rest, ok := numericSuffix(path, "/api/items/"); ok && rest == "" {
		return "/api/items/{id}"
	}
	if rest, ok := numericSuffix(path, "/api/requests/"); ok {
		if rest == "" {
			return "/api/requests/{id}"
		}
		if rest == "/status" {
			return "/api/requests/{id}/status"
		}
	}

	return path
}

// numericSuffix проверяет, что путь после prefix начинается с числового
// сегмента, и возвращает остаток пути после этого сегмента.
func numericSuffix(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := path[len(prefix):]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", false
	}
	return rest[i:], true
}
