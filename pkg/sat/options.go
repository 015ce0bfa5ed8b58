package sat

import "go.uber.org/zap"

// Option configures a Solver at creation.
type Option func(*Solver)

// WithLogger sets the logger used for solve events. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTerminator installs t as if SetTerminator was called right after
// creation.
func WithTerminator(t Terminator) Option {
	return func(s *Solver) {
		s.SetTerminator(t)
	}
}
