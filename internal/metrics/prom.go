package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	renders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "richparams_renders_total",
			Help: "Number of form renders",
		},
		[]string{"renderer", "outcome"},
	)

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "richparams_submissions_total",
			Help: "Number of variable submissions",
		},
		[]string{"outcome"},
	)

	edits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "richparams_edits_total",
			Help: "Number of field edits propagated to a session",
		},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "richparams_request_duration_seconds",
			Help:    "Console request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
)

// Register registers all metrics with the provided registerer.
func Register(r prometheus.Registerer) {
	r.MustRegister(renders, submissions, edits, requestDuration)
}

// RecordRender increments the render counter for a renderer.
func RecordRender(renderer string, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	renders.WithLabelValues(renderer, outcome).Inc()
}

// RecordSubmission increments the submission counter for an outcome.
func RecordSubmission(outcome string) {
	submissions.WithLabelValues(outcome).Inc()
}

// RecordEdit counts one applied field edit.
func RecordEdit() {
	edits.Inc()
}

// ObserveRequestDuration records the duration of a console request.
func ObserveRequestDuration(method, route string, d time.Duration) {
	requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
