package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_received_total",
			Help: "Total form submissions received, by eligibility outcome",
		},
		[]string{"eligible"},
	)

	NotifyFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_notify_failures_total",
			Help: "Total review notifications that failed to send",
		},
	)

	ReviewDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_decisions_total",
			Help: "Total reviewer decisions, by action",
		},
		[]string{"action"},
	)

	ReviewNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_not_found_total",
			Help: "Total reviewer actions that referenced no pending application",
		},
	)
)
