// Package metrics provides Prometheus instrumentation for the storage
// engine. The compression drivers record chunk and column counts, byte
// savings and latency through a process-global collector.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector bundles the compression metrics of the engine.
type Collector struct {
	chunksCompressed    prometheus.Counter
	columnsCompressed   prometheus.Counter
	bytesBefore         prometheus.Counter
	bytesAfter          prometheus.Counter
	compressionDuration prometheus.Histogram
	compressionRatio    prometheus.Histogram
}

// NewCollector creates a collector registered with reg under the given
// namespace.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		chunksCompressed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_compressed_total",
			Help:      "Total number of chunks dictionary-compressed.",
		}),
		columnsCompressed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "columns_compressed_total",
			Help:      "Total number of columns dictionary-compressed.",
		}),
		bytesBefore: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compression_bytes_before_total",
			Help:      "Estimated chunk bytes before compression.",
		}),
		bytesAfter: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compression_bytes_after_total",
			Help:      "Estimated chunk bytes after compression.",
		}),
		compressionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_compression_duration_seconds",
			Help:      "Latency of compressing one chunk.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		compressionRatio: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_compression_ratio",
			Help:      "Uncompressed to compressed size ratio per chunk.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
	}
}

var (
	defaultCollector *Collector
	defaultOnce      sync.Once
)

// Default returns the process-global collector, registered with the
// default Prometheus registry on first use.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = NewCollector(prometheus.DefaultRegisterer, "hyrise")
	})
	return defaultCollector
}

// ObserveChunkCompression records the outcome of compressing one chunk.
func (c *Collector) ObserveChunkCompression(columns int, bytesBefore, bytesAfter int64, duration time.Duration) {
	c.chunksCompressed.Inc()
	c.columnsCompressed.Add(float64(columns))
	c.bytesBefore.Add(float64(bytesBefore))
	c.bytesAfter.Add(float64(bytesAfter))
	c.compressionDuration.Observe(duration.Seconds())
	if bytesAfter > 0 {
		c.compressionRatio.Observe(float64(bytesBefore) / float64(bytesAfter))
	}
}
