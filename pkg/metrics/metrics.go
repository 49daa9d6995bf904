// Package metrics 提供基于Prometheus的指标收集
//
// 指标命名规范：
// - Counter以_total结尾（http_requests_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 标签只用低基数维度（method、path、status），不要用user_id等高基数值
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method（GET/POST）、path（路由模板）、status（200/404/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// OrdersCreatedTotal 订单创建总数
	OrdersCreatedTotal prometheus.Counter

	// ReviewsCreatedTotal 评论创建总数
	ReviewsCreatedTotal prometheus.Counter

	// CatalogCacheHitsTotal 货架缓存命中总数
	// 标签：shelf（recommended/popular/onsale）、result（hit/miss）
	CatalogCacheHitsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
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

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "订单创建总数",
		},
	)

	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "评论创建总数",
		},
	)

	CatalogCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_requests_total",
			Help: "货架缓存查询总数",
		},
		[]string{"shelf", "result"},
	)
}

// GinMiddleware 请求指标中间件
// 使用c.FullPath()作为path标签（路由模板，如/api/v1/books/:book_id），
// 避免把具体ID写入标签造成高基数
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		HTTPRequestsInProgress.Inc()

		c.Next()

		HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
