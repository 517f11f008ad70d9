package kiddo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBuild is called once per New call. points is the number of
	// input rows, duration the total build time, err is nil on success.
	RecordBuild(points int, duration time.Duration, err error)

	// RecordWithin is called after each WithinUnsorted call. queries is
	// the number of query rows, matches the number of result rows.
	RecordWithin(queries, matches int, duration time.Duration, err error)

	// RecordPairs is called after each QueryPairs call. pairs is the
	// number of result rows.
	RecordPairs(pairs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordWithin(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPairs(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
	WithinCount      atomic.Int64
	WithinErrors     atomic.Int64
	WithinMatches    atomic.Int64
	WithinTotalNanos atomic.Int64
	PairsCount       atomic.Int64
	PairsErrors      atomic.Int64
	PairsRows        atomic.Int64
	PairsTotalNanos  atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordWithin implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWithin(queries, matches int, duration time.Duration, err error) {
	b.WithinCount.Add(1)
	b.WithinMatches.Add(int64(matches))
	b.WithinTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WithinErrors.Add(1)
	}
}

// RecordPairs implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPairs(pairs int, duration time.Duration, err error) {
	b.PairsCount.Add(1)
	b.PairsRows.Add(int64(pairs))
	b.PairsTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PairsErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	WithinCount    int64
	WithinErrors   int64
	WithinMatches  int64
	WithinAvgNanos int64
	PairsCount     int64
	PairsErrors    int64
	PairsRows      int64
	PairsAvgNanos  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildAvgNanos:  avgNanos(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		WithinCount:    b.WithinCount.Load(),
		WithinErrors:   b.WithinErrors.Load(),
		WithinMatches:  b.WithinMatches.Load(),
		WithinAvgNanos: avgNanos(b.WithinTotalNanos.Load(), b.WithinCount.Load()),
		PairsCount:     b.PairsCount.Load(),
		PairsErrors:    b.PairsErrors.Load(),
		PairsRows:      b.PairsRows.Load(),
		PairsAvgNanos:  avgNanos(b.PairsTotalNanos.Load(), b.PairsCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
