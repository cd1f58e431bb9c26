package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anygym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PassesIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_passes_issued_total",
			Help: "Total number of gym passes issued",
		},
		[]string{"tier"},
	)

	PassDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_pass_denials_total",
			Help: "Total number of pass issuance denials",
		},
		[]string{"reason"},
	)

	PassesExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anygym_passes_expired_total",
			Help: "Total number of passes transitioned to expired by the sweeper",
		},
	)

	SweepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_pass_sweeps_total",
			Help: "Total number of expiration sweeps",
		},
		[]string{"status"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_checkins_total",
			Help: "Total number of front-desk check-in attempts",
		},
		[]string{"status"},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_notifications_sent_total",
			Help: "Total number of notifications sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "anygym_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anygym_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
		[]string{"tier"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPassIssued(tier string) {
	PassesIssuedTotal.WithLabelValues(tier).Inc()
}

func RecordPassDenied(reason string) {
	PassDenialsTotal.WithLabelValues(reason).Inc()
}

func RecordSweep(expired int64, err error) {
	if err != nil {
		SweepsTotal.WithLabelValues("error").Inc()
		return
	}
	SweepsTotal.WithLabelValues("ok").Inc()
	PassesExpiredTotal.Add(float64(expired))
}

func RecordCheckIn(status string) {
	CheckInsTotal.WithLabelValues(status).Inc()
}

func RecordNotification(notifType, status string) {
	NotificationsSentTotal.WithLabelValues(notifType, status).Inc()
}

func RecordSubscription(tier string) {
	SubscriptionsCreatedTotal.WithLabelValues(tier).Inc()
}
