// Package metrics 提供Prometheus监控指标
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 应用指标集合，注册在独立的 Registry 上
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	generationTotal    *prometheus.CounterVec
	generationDuration prometheus.Histogram
	solverDuration     prometheus.Histogram
	coverageRate       prometheus.Gauge
}

// New 创建并注册全部指标
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zhipai_http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "zhipai_http_request_duration_seconds",
		Help:    "HTTP请求延迟",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	generationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zhipai_schedule_generation_total",
		Help: "排班生成次数（按结果状态）",
	}, []string{"status"})

	generationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zhipai_schedule_generation_duration_seconds",
		Help:    "排班生成总耗时（含持久化）",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
	})

	solverDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zhipai_solver_duration_seconds",
		Help:    "CP-SAT 求解耗时",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
	})

	coverageRate := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "zhipai_schedule_coverage_rate",
		Help: "最近一次排班的槽位覆盖率 (0-1)",
	})

	registry.MustRegister(requestTotal, requestDuration,
		generationTotal, generationDuration, solverDuration, coverageRate)

	return &Metrics{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		generationTotal:    generationTotal,
		generationDuration: generationDuration,
		solverDuration:     solverDuration,
		coverageRate:       coverageRate,
	}
}

// Handler 暴露 Prometheus 抓取端点
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest 记录一次HTTP请求
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(method, path, fmt.Sprintf("%d", status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveGeneration 记录一次排班生成
func (m *Metrics) ObserveGeneration(status string, total, solver time.Duration, coverage float64) {
	if m == nil {
		return
	}
	m.generationTotal.WithLabelValues(status).Inc()
	m.generationDuration.Observe(total.Seconds())
	m.solverDuration.Observe(solver.Seconds())
	m.coverageRate.Set(coverage)
}
