package insert

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"DOTQUAD_INSERT_REQUEST_TIMEOUT" default:"10s"`
	MaxDotsLen     int           `envconfig:"DOTQUAD_INSERT_MAX_DOTS_LEN" default:"1000"`
}
