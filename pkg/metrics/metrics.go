// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
// - Counter（计数器）：只增不减，如请求总数、结算成功总数
// - Gauge（仪表盘）：可增可减的瞬时值，如处理中的请求数
// - Histogram（直方图）：观测值分布，如请求耗时、订单金额
//
// 使用方式：
//
//	metrics.InitMetrics()
//	http.Handle("/metrics", promhttp.Handler())
//
//	// 业务代码中：
//	metrics.IncCounter(metrics.CheckoutTotal)
//	metrics.ObserveHistogram(metrics.CheckoutDuration, time.Since(start).Seconds())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数，按method/path/status分维度
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CheckoutTotal 结算成功总数
	CheckoutTotal prometheus.Counter

	// CheckoutFailedTotal 结算失败总数
	CheckoutFailedTotal prometheus.Counter

	// CheckoutDuration 结算耗时分布
	CheckoutDuration prometheus.Histogram

	// OrderAmountCents 订单金额分布（分）
	OrderAmountCents prometheus.Histogram
)

// InitMetrics 初始化并注册所有指标
// 可重复调用（幂等），便于测试
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP请求耗时",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
	}, []string{"method", "path"})

	HTTPRequestsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_progress",
		Help: "正在处理的HTTP请求数",
	})

	CheckoutTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_total",
		Help: "结算成功总数",
	})

	CheckoutFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_failed_total",
		Help: "结算失败总数",
	})

	CheckoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "结算耗时",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
	})

	OrderAmountCents = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_amount_cents",
		Help:    "订单金额分布（分）",
		Buckets: prometheus.ExponentialBuckets(100, 10, 6), // 1元~10万元
	})
}

// IncCounter 递增Counter
func IncCounter(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(c *prometheus.CounterVec, labels map[string]string) {
	if c != nil {
		c.With(labels).Inc()
	}
}

// IncGauge 递增Gauge
func IncGauge(g prometheus.Gauge) {
	if g != nil {
		g.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(g prometheus.Gauge) {
	if g != nil {
		g.Dec()
	}
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(h prometheus.Histogram, value float64) {
	if h != nil {
		h.Observe(value)
	}
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(h *prometheus.HistogramVec, labels map[string]string, value float64) {
	if h != nil {
		h.With(labels).Observe(value)
	}
}
