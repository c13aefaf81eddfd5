package ecsgo

import "log/slog"

type options struct {
	registry         *Registry
	metricsCollector MetricsCollector
	logger           *Logger
	initialCapacity  int
}

// Option configures World construction.
type Option func(*options)

// WithRegistry makes the world resolve kinds through r instead of a
// private registry. Worlds sharing a registry agree on kind ids.
//
// If nil is passed, a fresh registry is used.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r == nil {
			r = NewRegistry()
		}
		o.registry = r
	}
}

// WithInitialCapacity pre-sizes every newly created archetype for n rows.
// It only amortizes allocations and never changes observable results.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = max(n, 0)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ecsgo.BasicMetricsCollector{}
//	w := ecsgo.New(ecsgo.WithMetricsCollector(metrics))
//	// ... use w ...
//	stats := metrics.GetStats()
//	fmt.Printf("Archetypes: %d, Mutations: %d\n", stats.Archetypes, stats.Mutations)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ecsgo.NewJSONLogger(slog.LevelDebug)
//	w := ecsgo.New(ecsgo.WithLogger(logger))
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

// WithConfig applies a file-based Config. A config failing Validate is
// ignored and earlier options stay in effect; use LoadConfig to surface
// validation errors.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Validate() != nil {
			return
		}
		logger, err := cfg.logger()
		if err != nil {
			return
		}
		o.initialCapacity = cfg.InitialCapacity
		o.logger = logger
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
	if o.registry == nil {
		o.registry = NewRegistry()
	}
	return o
}
