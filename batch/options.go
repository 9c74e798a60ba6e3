package batch

import (
	"log/slog"
	"runtime"

	"github.com/mgm-tp/jfunk-sub000/pattern"
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	workers     int
	logger      *slog.Logger
	patternOpts []pattern.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets the number of goroutines. Output is reproducible only for a
// fixed seed and worker count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger for batch progress and, unless overridden by
// WithPatternOptions, for the compiled patterns. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithPatternOptions passes opts to every pattern a worker compiles.
func WithPatternOptions(opts ...pattern.Option) Option {
	return func(c *config) {
		c.patternOpts = append(c.patternOpts, opts...)
	}
}
