package singleton

import "github.com/rs/zerolog"

// Option configures a wrapper when it is bound.
type Option func(*options)

type options struct {
	policy Policy
	name   string
	logger zerolog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithKeepAlive selects the ProcessKeepAlive policy.
func WithKeepAlive() Option {
	return WithPolicy(ProcessKeepAlive)
}

// WithPolicy sets the lifetime policy.
func WithPolicy(policy Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithName sets the name used in logs and stats. Defaults to the wrapped type.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger for lifecycle events. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
