package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeNotFound        = "not_found"
	OutcomeForbidden       = "forbidden"
	OutcomeConflict        = "conflict"
	OutcomeError           = "error"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_mutations_total",
		Help: "Forum mutations by name and outcome.",
	}, []string{"mutation", "outcome"})

	tableCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "forum_table_estimated_count",
		Help: "Estimated record count for a table.",
	}, []string{"table"})
)

// RecordMutation counts one mutation attempt with its outcome
func RecordMutation(mutation, outcome string) {
	mutations.WithLabelValues(mutation, outcome).Inc()
}

// Middleware records request counts and latency keyed by the matched route template
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
