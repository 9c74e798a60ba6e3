package pattern

import "log/slog"

// config holds the knobs of a compiled pattern. It is copied into the Pattern
// and never changed afterwards.
type config struct {
	logger             *slog.Logger
	spaceRetries       int
	edgeRetries        int
	distributeAttempts int
	onDiagnostic       func(Diagnostic)
}

// newConfig applies opts over the documented defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:             slog.Default(),
		spaceRetries:       DefaultSpaceRetries,
		edgeRetries:        DefaultEdgeRetries,
		distributeAttempts: DefaultDistributeAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// report logs d at warning level and forwards it to the hook.
func (c *config) report(d Diagnostic) {
	c.logger.Warn(d.Message,
		slog.String("kind", d.Kind.String()),
		slog.Int("atom", d.Atom),
		slog.String("expression", d.Expression),
	)
	if c.onDiagnostic != nil {
		c.onDiagnostic(d)
	}
}
