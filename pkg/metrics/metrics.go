package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	RSVPSubmissionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rsvp_submission_count",
			Help: "Total number of RSVP submissions",
		},
		[]string{"kind"}, // kind: create, update
	)

	GuestVerificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guest_verification_count",
			Help: "Total number of guest verification attempts",
		},
		[]string{"result"}, // result: verified, not_found
	)

	EmailSentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sent_count",
			Help: "Total number of RSVP notification emails",
		},
		[]string{"status"}, // status: success, failed
	)

	PhotoUploadCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_upload_count",
			Help: "Total number of uploaded photos",
		},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementRSVPSubmission(kind string) {
	RSVPSubmissionCount.WithLabelValues(kind).Inc()
}

func IncrementGuestVerification(result string) {
	GuestVerificationCount.WithLabelValues(result).Inc()
}

func IncrementEmailSent(status string) {
	EmailSentCount.WithLabelValues(status).Inc()
}
