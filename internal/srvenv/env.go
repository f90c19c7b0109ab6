package srvenv

import (
	"net/http"

	"github.com/go-sod/dotquad/internal/index"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	index   index.ProvideFn
	metrics http.Handler
}

func (s *SrvEnv) ProvideIndex() index.ProvideFn {
	return s.index
}

// Metrics is nil when metrics are disabled.
func (s *SrvEnv) Metrics() http.Handler {
	return s.metrics
}

func WithIndex(fn index.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.index = fn
		return s
	}
}

func WithMetrics(h http.Handler) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.metrics = h
		return s
	}
}
