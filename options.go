package piecewisego

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures builder behavior.
//
// Options exist to avoid exploding the constructor surface: observability
// concerns are attached here, never threaded through the evaluation API.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for insertions, builds
// and evaluations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &piecewisego.BasicMetricsCollector{}
//	pf := piecewisego.Dual[float64, float64](piecewisego.WithMetricsCollector(metrics)).
//	    With(0, 1, func(x float64) float64 { return x }).
//	    MustBuild()
//	// ... evaluate ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for builder operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := piecewisego.NewJSONLogger(slog.LevelDebug)
//	b := piecewisego.Dual[float64, float64](piecewisego.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
