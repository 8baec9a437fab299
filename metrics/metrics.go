package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetflow_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assetflow_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	assetsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assetflow_assets_created_total",
		Help: "Number of asset records created",
	})

	mutationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetflow_mutation_errors_total",
		Help: "Failed inventory mutations by operation and error kind",
	}, []string{"operation", "kind"})
)

// ObserveHTTPRequest ghi nhận một request HTTP
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// AddAssetsCreated cộng số tài sản vừa tạo
func AddAssetsCreated(n int) {
	if n > 0 {
		assetsCreated.Add(float64(n))
	}
}

func ObserveMutationError(operation, kind string) {
	mutationErrors.WithLabelValues(operation, kind).Inc()
}

// Middleware đo thời gian xử lý theo route template, route không khớp gom về "unmatched"
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
