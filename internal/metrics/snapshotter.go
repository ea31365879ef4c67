package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotTakeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscope",
		Subsystem: "snapshotter",
		Name:      "take_total",
		Help:      "Count of difficulty snapshot attempts.",
	}, []string{"network", "status"})
	snapshotTakeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscope",
		Subsystem: "snapshotter",
		Name:      "take_duration_seconds",
		Help:      "Duration of difficulty snapshot attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	snapshotFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscope",
		Subsystem: "snapshotter",
		Name:      "flush_total",
		Help:      "Count of snapshot batch flushes into storage.",
	}, []string{"network", "status"})
	snapshotFlushRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscope",
		Subsystem: "snapshotter",
		Name:      "flush_rows_total",
		Help:      "Count of snapshot rows written to storage.",
	}, []string{"network"})
)

// Snapshotter tracks metrics for the periodic difficulty snapshot loop.
type Snapshotter struct {
	network string
}

// NewSnapshotter constructs a metrics collector for the snapshot service.
func NewSnapshotter(network string) *Snapshotter {
	if network == "" {
		network = "unknown"
	}
	return &Snapshotter{network: network}
}

// ObserveTake records one snapshot attempt.
func (m Snapshotter) ObserveTake(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	snapshotTakeTotal.WithLabelValues(m.network, status).Inc()
	snapshotTakeDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveFlush records one batch flush into storage.
func (m Snapshotter) ObserveFlush(err error, rows int) {
	status := "success"
	if err != nil {
		status = "error"
	}
	snapshotFlushTotal.WithLabelValues(m.network, status).Inc()
	if err == nil {
		snapshotFlushRows.WithLabelValues(m.network).Add(float64(rows))
	}
}
