// Package metrics holds the Prometheus collectors shared by every service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeSkipped   = "skipped"
	OutcomeDuplicate = "duplicate"
	OutcomeUnknown   = "unknown_format"
)

var (
	eventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_events_published_total",
			Help: "Total number of events handed to the bus",
		},
		[]string{"topic", "outcome"},
	)

	messagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_messages_consumed_total",
			Help: "Total number of bus records consumed by the notifier",
		},
		[]string{"topic", "outcome"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_notifications_total",
			Help: "Total number of notifications by final status",
		},
		[]string{"type", "status"},
	)

	ticketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_ticket_transitions_total",
			Help: "Total number of ticket status changes",
		},
		[]string{"status"},
	)

	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_payments_total",
			Help: "Total number of simulated payments by result",
		},
		[]string{"method", "status"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// RecordPublished records one publish attempt
func RecordPublished(topic, outcome string) {
	eventsPublishedTotal.WithLabelValues(topic, outcome).Inc()
}

// RecordConsumed records one consumed record
func RecordConsumed(topic, outcome string) {
	messagesConsumedTotal.WithLabelValues(topic, outcome).Inc()
}

// RecordNotification records a notification reaching status
func RecordNotification(notificationType, status string) {
	notificationsTotal.WithLabelValues(notificationType, status).Inc()
}

// RecordTicketTransition records a ticket entering status
func RecordTicketTransition(status string) {
	ticketsTotal.WithLabelValues(status).Inc()
}

// RecordTicketTransitions records n tickets entering status at once
func RecordTicketTransitions(status string, n int64) {
	if n > 0 {
		ticketsTotal.WithLabelValues(status).Add(float64(n))
	}
}

// RecordPayment records a resolved payment
func RecordPayment(method, status string) {
	paymentsTotal.WithLabelValues(method, status).Inc()
}

// EchoMiddleware counts requests and observes latency by route template
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Register mounts the metrics endpoint on e
func Register(e *echo.Echo, path string) {
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(Handler()))
}
