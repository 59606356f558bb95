package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	dombatch "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/batch"
)

// Batch Prometheus metrics.
var (
	BatchRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hodconsole",
			Name:      "batch_runs_total",
			Help:      "Total number of batch runs",
		},
		[]string{"operation", "outcome"}, // outcome: "ok" / "partial" / "failed"
	)

	BatchItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hodconsole",
			Name:      "batch_items_total",
			Help:      "Total number of batch items by result",
		},
		[]string{"operation", "status"}, // status: "ok" / "error"
	)
)

// RegisterBatchMetrics registers batch metrics on the default registry.
// Called explicitly from main (no init()).
func RegisterBatchMetrics() {
	prometheus.MustRegister(BatchRunsTotal)
	prometheus.MustRegister(BatchItemsTotal)
}

// RecordBatch records the outcome of one batch run.
func RecordBatch(operation string, report dombatch.Report) {
	succeeded := len(report.Succeeded())
	failed := len(report.Failed())

	outcome := "ok"
	switch {
	case failed > 0 && succeeded == 0:
		outcome = "failed"
	case failed > 0:
		outcome = "partial"
	}
	BatchRunsTotal.WithLabelValues(operation, outcome).Inc()
	BatchItemsTotal.WithLabelValues(operation, "ok").Add(float64(succeeded))
	BatchItemsTotal.WithLabelValues(operation, "error").Add(float64(failed))
}
