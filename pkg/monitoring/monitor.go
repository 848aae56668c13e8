package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// DailySetOutcomes 组题结果：existing / created / caught_up / no_subject
	DailySetOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_set_assemblies_total",
			Help: "Daily question set fetch-or-create outcomes",
		},
		[]string{"outcome"},
	)

	// DailySetSubmissions 交卷结果：graded / rejected
	DailySetSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_set_submissions_total",
			Help: "Daily question set submissions by result",
		},
		[]string{"result"},
	)

	DailySetScoreRatio = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "daily_set_score_ratio",
			Help:    "Score divided by question count of graded daily sets",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(DailySetOutcomes)
		prometheus.MustRegister(DailySetSubmissions)
		prometheus.MustRegister(DailySetScoreRatio)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
