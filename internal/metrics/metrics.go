package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"registrySync/internal/model"
)

const namespace = "registrysync"

// Recorder collects synchronization metrics on its own registry so they can be
// dumped to a node-exporter textfile at the end of a run.
type Recorder struct {
	registry      *prometheus.Registry
	writes        *prometheus.CounterVec
	writeDuration *prometheus.HistogramVec
	observations  *prometheus.CounterVec
	runs          *prometheus.CounterVec
	lastRun       *prometheus.GaugeVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writes_total",
			Help:      "Registry writes by run, key and outcome.",
		}, []string{"run", "kind", "outcome"}),
		writeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "write_duration_seconds",
			Help:      "Time from submitting a registry write until it is mined.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 15, 30, 60, 120, 300},
		}, []string{"run", "kind"}),
		observations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observations_total",
			Help:      "Read-back verifications by run, key and result.",
		}, []string{"run", "kind", "result"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by kind and status.",
		}, []string{"run", "status"}),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run of each kind finished.",
		}, []string{"run"}),
	}
	r.registry.MustRegister(r.writes, r.writeDuration, r.observations, r.runs, r.lastRun)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveWrite records one confirmed or failed write.
func (r *Recorder) ObserveWrite(run model.RunKind, kind model.ObservationKind, elapsed time.Duration, err error) {
	outcome := "confirmed"
	if err != nil {
		outcome = "failed"
	}
	r.writes.WithLabelValues(string(run), string(kind), outcome).Inc()
	r.writeDuration.WithLabelValues(string(run), string(kind)).Observe(elapsed.Seconds())
}

// ObserveObservation records one verification result.
func (r *Recorder) ObserveObservation(run model.RunKind, obs model.Observation) {
	result := "match"
	if !obs.Matched {
		result = "mismatch"
	}
	r.observations.WithLabelValues(string(run), string(obs.Kind), result).Inc()
}

// ObserveRun records the final status of a run.
func (r *Recorder) ObserveRun(summary model.RunSummary) {
	r.runs.WithLabelValues(string(summary.Kind), summary.Status()).Inc()
	r.lastRun.WithLabelValues(string(summary.Kind)).Set(float64(summary.FinishedAt.Unix()))
}

// WriteTextfile dumps every collected metric in text format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return fmt.Errorf("metrics file path is required")
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
