package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/internal/logging"
	"github.com/go-sod/dotquad/internal/metric"
	"github.com/go-sod/dotquad/internal/srvenv"
	"github.com/kelseyhightower/envconfig"
)

type IndexConfigProvider interface {
	IndexConfig() *index.Config
}

type MetricsConfigProvider interface {
	MetricsEnabledFlag() bool
}

// Setup fills config from the environment and prepares the server
// environment for every provider interface config implements.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if indexConfigProvider, ok := config.(IndexConfigProvider); ok {
		logger.Info("Configuring index")
		provideFn, err := ProvideIndexFor(indexConfigProvider)
		if err != nil {
			return nil, fmt.Errorf("unable create index provide function: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithIndex(provideFn))
	}

	if metricsConfigProvider, ok := config.(MetricsConfigProvider); ok && metricsConfigProvider.MetricsEnabledFlag() {
		logger.Info("Configuring metrics")
		handler, err := metric.NewHandler()
		if err != nil {
			return nil, fmt.Errorf("unable create metrics exporter: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithMetrics(handler))
	}

	return srvenv.New(serverEnvOpts...), nil
}

func ProvideIndexFor(provider IndexConfigProvider) (index.ProvideFn, error) {
	cfg := provider.IndexConfig()
	universe := cfg.Universe.Rect()
	if err := universe.Validate(); err != nil {
		return nil, fmt.Errorf("index universe: %w", err)
	}
	return func() (*index.Index, error) {
		return index.New(
			universe,
			index.WithMaxPoints(cfg.MaxPoints),
			index.WithStrictBounds(cfg.StrictBounds),
		)
	}, nil
}
