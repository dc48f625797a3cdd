// Package metrics exposes prometheus collectors for the transformer. They are
// registered with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "zxtransformer"
)

var (
	// Segments counts segment list elements by kind ("unit" or "passthrough").
	Segments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "segments_total",
			Help:      "Number of segments produced by the segmenter",
		},
		[]string{"kind"},
	)

	GatesIn = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "gates_in_total",
			Help:      "Number of gates handed to the optimizer",
		},
	)

	GatesOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "gates_out_total",
			Help:      "Number of gates returned by the optimizer",
		},
	)

	// Transforms counts transform calls by result ("ok", "empty" or "error").
	Transforms = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transforms_total",
			Help:      "Number of transform calls",
		},
		[]string{"result"},
	)

	TransformDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "transform_duration_seconds",
			Help:      "Time taken by a transform call",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// CacheLookups counts optimizer cache lookups by outcome ("hit" or "miss").
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "optimizer_cache",
			Name:      "lookups_total",
			Help:      "Number of optimizer cache lookups",
		},
		[]string{"outcome"},
	)
)
