package service

import "time"

// Option configures services that stamp times
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for updated_at and last_update
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
