// Package metrics exposes Prometheus collectors for tiling checks.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvtile/tiling"
)

// Namespace prefixes every metric name.
const Namespace = "lvtile"

// Result label values of ChecksTotal.
const (
	ResultTileable    = "tileable"
	ResultNotTileable = "not_tileable"
)

// Recorder owns a private registry and implements tiling.Observer.
type Recorder struct {
	registry *prometheus.Registry

	ChecksTotal        *prometheus.CounterVec
	AugmentationsTotal prometheus.Counter
	CheckDuration      prometheus.Histogram
	CheckCells         prometheus.Histogram
}

var _ tiling.Observer = (*Recorder)(nil)

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		ChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "checks_total",
				Help:      "Total number of tiling checks by verdict",
			},
			[]string{"result"},
		),

		AugmentationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "augmentations_total",
				Help:      "Total number of augmenting paths pushed by the flow engine",
			},
		),

		CheckDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "check_duration_seconds",
				Help:      "Duration of tiling checks",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
		),

		CheckCells: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "check_cells",
				Help:      "Number of open cells per checked plan",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// ObserveCheck records one verdict and its duration.
func (r *Recorder) ObserveCheck(res *tiling.Result, elapsed time.Duration) {
	result := ResultNotTileable
	if res.Tileable {
		result = ResultTileable
	}
	r.ChecksTotal.WithLabelValues(result).Inc()
	r.CheckDuration.Observe(elapsed.Seconds())
	r.CheckCells.Observe(float64(res.Black + res.Red))
}

// ObserveAugment counts one augmenting path.
func (r *Recorder) ObserveAugment() {
	r.AugmentationsTotal.Inc()
}

// Registry returns the private registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes the registry to path in the text exposition format,
// atomically, for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
