// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
// **HTTP指标**：请求总数、耗时分布、处理中的请求数（由middleware.Metrics采集）
//
// **业务指标**：作者/图书服务每个操作的调用结果（success / not_found / conflict / invalid / error）
//
// **缓存指标**：详情缓存的命中与未命中
//
// # 使用示例
//
//	// 1. 初始化Metrics（程序启动时调用一次）
//	metrics.InitMetrics()
//
//	// 2. 暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 在业务代码中记录指标
//	defer func() { metrics.RecordOperation("author", "CreateAuthor", err) }()
//
// # 命名规范
//
//   - Counter 以 `_total` 结尾
//   - Histogram 以单位结尾（`_seconds`）
//   - 避免高基数标签：path使用路由模板(/api/v1/books/:id)而非真实URL
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/books/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// ServiceOperationsTotal 服务操作总数（Counter）
	// 标签：service（author/book）、operation（CreateBook等）、result
	ServiceOperationsTotal *prometheus.CounterVec

	// 缓存指标

	// CacheLookupsTotal 缓存查询总数（Counter）
	// 标签：entity（author/book）、result（hit/miss/error）
	CacheLookupsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	ServiceOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshelf_service_operations_total",
			Help: "作者/图书服务操作总数",
		},
		[]string{"service", "operation", "result"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshelf_cache_lookups_total",
			Help: "详情缓存查询总数",
		},
		[]string{"entity", "result"},
	)
}

// Result 将错误归类为指标标签值
func Result(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.IsNotFound(err):
		return "not_found"
	case apperrors.IsConflict(err):
		return "conflict"
	case apperrors.IsDomainError(err):
		return "invalid"
	default:
		return "error"
	}
}

// RecordOperation 记录一次服务操作
// 未调用InitMetrics时（如单元测试）静默跳过
func RecordOperation(service, operation string, err error) {
	if ServiceOperationsTotal == nil {
		return
	}
	ServiceOperationsTotal.WithLabelValues(service, operation, Result(err)).Inc()
}

// RecordCacheLookup 记录一次缓存查询
func RecordCacheLookup(entity, result string) {
	if CacheLookupsTotal == nil {
		return
	}
	CacheLookupsTotal.WithLabelValues(entity, result).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
