package businessflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	// Authentication events partitioned by event (register, login, logout, edit_profile) and outcome
	authEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_desk_auth_events_total",
			Help: "Total number of authentication events by outcome",
		},
		[]string{"event", "outcome"},
	)

	// Lead operations partitioned by operation and outcome
	leadOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_desk_lead_operations_total",
			Help: "Total number of lead operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Rows written per lead export
	leadExportRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lead_desk_lead_export_rows",
			Help:    "Number of leads written per export workbook",
			Buckets: []float64{0, 10, 100, 1000, 5000, 10000},
		},
	)
)

func outcome(err error) string {
	if err != nil {
		return outcomeFailure
	}
	return outcomeSuccess
}

func recordAuthEvent(event string, err error) {
	authEventsTotal.WithLabelValues(event, outcome(err)).Inc()
}

func recordLeadOperation(operation string, err error) {
	leadOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}
