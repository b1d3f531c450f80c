package geodarray

type options struct {
	logger  *Logger
	maskNaN bool
}

func defaultOptions() options {
	return options{logger: NoopLogger()}
}

// Option configures a Geod.
type Option func(*options)

// WithLogger sets the logger used to report mappings.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMaskNaN makes NaN input values count as missing, in addition to the
// elements flagged in each input's mask. It is off by default, in which
// case NaN inputs are handed to the solver unchanged.
func WithMaskNaN(enabled bool) Option {
	return func(o *options) {
		o.maskNaN = enabled
	}
}
