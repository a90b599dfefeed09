package sequence

import "github.com/go-logr/logr"

// Option configures a Sequence during creation.
type Option func(*options)

type options struct {
	log logr.Logger
}

// WithLogger sets the logger used to trace buffer reallocations. Reallocations
// are logged at verbosity 1 and allocation failures as errors. By default
// nothing is logged.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
