package engine

// Options tunes the checks the simulator applies before driving rovers
type Options struct {
	// RejectNegativeStart makes a start with a negative coordinate fail
	// ErrStartOutOfBounds. Off by default: only the upper bound is checked.
	RejectNegativeStart bool

	// Observer, when set, receives every executed command in order
	Observer func(MoveRecord)
}

// Option configures a Simulator
type Option func(*Options)

// WithNegativeStartCheck enables or disables the lower-bound start check
func WithNegativeStartCheck(enabled bool) Option {
	return func(o *Options) {
		o.RejectNegativeStart = enabled
	}
}

// WithObserver registers a callback for executed commands
func WithObserver(fn func(MoveRecord)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
