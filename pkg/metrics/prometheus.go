// Package metrics provides Prometheus metrics for the matchforge pipeline.
// The process is a one-shot batch job, so there is no exposition endpoint;
// stages record into the registry and the entrypoint logs a final snapshot.
package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages the pipeline's Prometheus metrics.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  prometheus.Registerer
	gatherer  prometheus.Gatherer

	// Dataset metrics.
	rowsGenerated       prometheus.Counter
	goalkeeperZeroed    prometheus.Counter
	degenerateFallback  prometheus.Counter
	factRowsExported    prometheus.Gauge
	summaryRowsExported prometheus.Gauge

	// Stage timings, labeled by stage name.
	stageDuration *prometheus.GaugeVec
}

// Custom registry keeps the default Go collectors out of the snapshot.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global registry

var globalManager *Manager //nolint:gochecknoglobals // intentional singleton

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Default returns the global metrics manager.
func Default() *Manager {
	return globalManager
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "matchforge",
		subsystem: "pipeline",
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
		gatherer:  prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_generated_total",
		Help:      "Total number of synthetic match records generated",
	})

	m.goalkeeperZeroed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "goalkeeper_rows_zeroed_total",
		Help:      "Total number of goalkeeper rows whose outfield stats were zeroed",
	})

	m.degenerateFallback = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "degenerate_normalizations_total",
		Help:      "Times min-max normalization fell back to the midpoint score",
	})

	m.factRowsExported = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fact_rows_exported",
		Help:      "Rows written to the fact sheet in the last run",
	})

	m.summaryRowsExported = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "summary_rows_exported",
		Help:      "Rows written to the summary sheet in the last run",
	})

	m.stageDuration = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_seconds",
		Help:      "Wall-clock duration of each pipeline stage",
	}, []string{"stage"})
}

// AddRowsGenerated records rows produced by the generator.
func (m *Manager) AddRowsGenerated(n int) {
	if m.enabled {
		m.rowsGenerated.Add(float64(n))
	}
}

// AddGoalkeeperZeroed records rows touched by the position corrector.
func (m *Manager) AddGoalkeeperZeroed(n int) {
	if m.enabled {
		m.goalkeeperZeroed.Add(float64(n))
	}
}

// IncDegenerateFallback records a midpoint-fallback normalization.
func (m *Manager) IncDegenerateFallback() {
	if m.enabled {
		m.degenerateFallback.Inc()
	}
}

// SetExportedRows records the final sheet sizes.
func (m *Manager) SetExportedRows(facts, summary int) {
	if m.enabled {
		m.factRowsExported.Set(float64(facts))
		m.summaryRowsExported.Set(float64(summary))
	}
}

// ObserveStageDuration records a stage's wall-clock duration.
func (m *Manager) ObserveStageDuration(stage string, d time.Duration) {
	if m.enabled {
		m.stageDuration.WithLabelValues(stage).Set(d.Seconds())
	}
}

// Snapshot gathers the manager's registry and returns the current sample
// values keyed by fully qualified metric name. Labeled metrics get one
// entry per label set, e.g. stage_duration_seconds{stage="export"}. The
// entrypoint logs this after a run so the batch job's metrics are
// observable without an exposition endpoint.
func (m *Manager) Snapshot() (map[string]float64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotFailed, err)
	}

	snapshot := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := mf.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				pairs := make([]string, len(labels))
				for i, lp := range labels {
					pairs[i] = fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
				}
				name += "{" + strings.Join(pairs, ",") + "}"
			}
			switch {
			case metric.GetCounter() != nil:
				snapshot[name] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				snapshot[name] = metric.GetGauge().GetValue()
			}
		}
	}
	return snapshot, nil
}
