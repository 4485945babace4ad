package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpMetrics *metrics
	metricsOnce sync.Once
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// ลงทะเบียนครั้งเดียวต่อ process กัน duplicate registration ตอนสร้าง router หลายตัว (เทสต์)
func loadMetrics() *metrics {
	metricsOnce.Do(func() {
		httpMetrics = &metrics{
			requests: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			}, []string{"method", "route", "status"}),
			duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "route"}),
		}
	})
	return httpMetrics
}

// Metrics ใช้ route template (c.FullPath) เป็น label ไม่ใช่ path จริง
func Metrics() gin.HandlerFunc {
	m := loadMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
