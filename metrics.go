package piecewisego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    evalCounter   prometheus.Counter
//	    evalHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordEval(duration time.Duration, defined bool) {
//	    p.evalCounter.Inc()
//	    // ... record duration, undefined ratio, etc.
//	}
type MetricsCollector interface {
	// RecordInsert is called after each segment insertion attempt.
	// duration is the time taken, err is nil if the segment was accepted.
	RecordInsert(duration time.Duration, err error)

	// RecordBuild is called after each build (finalize) attempt.
	// segments is the number of segments in the built function.
	RecordBuild(segments int, duration time.Duration, err error)

	// RecordEval is called after each evaluation.
	// defined is false when the input fell outside every segment.
	RecordEval(duration time.Duration, defined bool)

	// RecordLoad is called after each descriptor load attempt.
	RecordLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)    {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEval(time.Duration, bool)        {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount     atomic.Int64
	InsertErrors    atomic.Int64
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuiltSegments   atomic.Int64
	EvalCount       atomic.Int64
	EvalUndefined   atomic.Int64
	EvalTotalNanos  atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadTotalNanos  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(segments int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuiltSegments.Add(int64(segments))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordEval implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEval(duration time.Duration, defined bool) {
	b.EvalCount.Add(1)
	b.EvalTotalNanos.Add(duration.Nanoseconds())
	if !defined {
		b.EvalUndefined.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:   b.InsertCount.Load(),
		InsertErrors:  b.InsertErrors.Load(),
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuiltSegments: b.BuiltSegments.Load(),
		EvalCount:     b.EvalCount.Load(),
		EvalUndefined: b.EvalUndefined.Load(),
		EvalAvgNanos:  b.getAvgEvalNanos(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgEvalNanos() int64 {
	count := b.EvalCount.Load()
	if count == 0 {
		return 0
	}
	return b.EvalTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount   int64
	InsertErrors  int64
	BuildCount    int64
	BuildErrors   int64
	BuiltSegments int64
	EvalCount     int64
	EvalUndefined int64
	EvalAvgNanos  int64
	LoadCount     int64
	LoadErrors    int64
}
