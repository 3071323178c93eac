package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/notifyhub/pushover/pkg/pushover"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	MessagesSent   *prometheus.CounterVec
	MessagesFailed *prometheus.CounterVec
	SubmitLatency  *prometheus.HistogramVec
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pushover_messages_sent_total",
			Help: "Total number of messages accepted by the Pushover API.",
		}, []string{"priority"}),

		MessagesFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pushover_messages_failed_total",
			Help: "Total number of failed submissions, by the stage that failed.",
		}, []string{"stage"}),

		SubmitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pushover_submit_seconds",
			Help:    "Latency of successful submissions from validation to API response.",
			Buckets: prometheus.DefBuckets,
		}, []string{"priority"}),
	}

	reg.MustRegister(
		m.MessagesSent,
		m.MessagesFailed,
		m.SubmitLatency,
	)

	return m
}

// Hooks returns submission callbacks that feed the instruments.
func (m *Metrics) Hooks() pushover.Hooks {
	return pushover.Hooks{
		OnSent: func(p pushover.Priority, latency time.Duration) {
			m.MessagesSent.WithLabelValues(p.String()).Inc()
			m.SubmitLatency.WithLabelValues(p.String()).Observe(latency.Seconds())
		},
		OnFailed: func(stage pushover.Stage) {
			m.MessagesFailed.WithLabelValues(string(stage)).Inc()
		},
	}
}
