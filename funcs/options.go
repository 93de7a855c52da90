package funcs

import (
	"io"

	plog "github.com/phuslu/log"
)

// Option configures a decorator.
type Option func(*settings)

type settings struct {
	clock  Clock
	log    *plog.Logger
	hasher Hasher
}

// WithClock sets the time source. Defaults to [SystemClock].
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger for decorator events. By default nothing is
// logged.
func WithLogger(l plog.Logger) Option {
	return func(s *settings) { s.log = &l }
}

// WithHasher sets the hash used to bucket memo-cache keys. Defaults to an
// unseeded [XXH3Hasher].
func WithHasher(h Hasher) Option {
	return func(s *settings) {
		if h != nil {
			s.hasher = h
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		clock: SystemClock{},
		log: &plog.Logger{
			Level:  plog.InfoLevel,
			Writer: &plog.IOWriter{Writer: io.Discard},
		},
		hasher: XXH3Hasher{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
