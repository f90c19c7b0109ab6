package config

import (
	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/internal/insert"
	"github.com/go-sod/dotquad/internal/query"
	"github.com/go-sod/dotquad/internal/setup"
)

var (
	_ setup.IndexConfigProvider   = (*Config)(nil)
	_ setup.MetricsConfigProvider = (*Config)(nil)
)

type Config struct {
	SrvAddr        string `envconfig:"DOTQUAD_ADDR" default:":8787"`
	GRPCAddr       string `envconfig:"DOTQUAD_GRPC_ADDR" default:":8788"`
	MaxConns       int    `envconfig:"DOTQUAD_MAX_CONNS" default:"256"`
	MetricsEnabled bool   `envconfig:"DOTQUAD_METRICS_ENABLED" default:"true"`
	Index          index.Config
	Insert         insert.Config
	Query          query.Config
}

func (c *Config) IndexConfig() *index.Config {
	return &c.Index
}

func (c *Config) MetricsEnabledFlag() bool {
	return c.MetricsEnabled
}
