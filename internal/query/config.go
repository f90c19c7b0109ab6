package query

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"DOTQUAD_QUERY_REQUEST_TIMEOUT" default:"10s"`
	MaxRadius      float64       `envconfig:"DOTQUAD_QUERY_MAX_RADIUS" default:"0"`
}
