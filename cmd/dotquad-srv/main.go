package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-sod/dotquad/internal/browse"
	"github.com/go-sod/dotquad/internal/buildinfo"
	dotquad "github.com/go-sod/dotquad/internal/config"
	"github.com/go-sod/dotquad/internal/insert"
	"github.com/go-sod/dotquad/internal/logging"
	"github.com/go-sod/dotquad/internal/query"
	"github.com/go-sod/dotquad/internal/server"
	"github.com/go-sod/dotquad/internal/setup"
	"github.com/go-sod/dotquad/internal/shutdown"
	"golang.org/x/sync/errgroup"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		done()
		logger.Fatal(err)
	}

	done()
}

func run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	config := dotquad.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}

	idx, err := env.ProvideIndex()()
	if err != nil {
		return fmt.Errorf("index provider function error: %w", err)
	}

	insertHandler, err := insert.NewHandler(&config.Insert, idx)
	if err != nil {
		return fmt.Errorf("insert.NewHandler: %w", err)
	}
	queryHandler, err := query.NewHandler(&config.Query, idx)
	if err != nil {
		return fmt.Errorf("query.NewHandler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/insert", insertHandler)
	mux.Handle("/find", queryHandler)
	mux.Handle("/points", browse.NewPointsHandler(idx))
	mux.Handle("/layout", browse.NewLayoutHandler(idx))
	mux.Handle("/health", server.HandleHealth(ctx))
	if h := env.Metrics(); h != nil {
		mux.Handle("/metrics", h)
	}

	srv, err := server.New(config.SrvAddr, config.MaxConns)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	logger.Infof("index universe %s, serving http on %s", idx.Universe(), srv.Addr())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ServeHTTPHandler(ctx, mux)
	})
	if config.GRPCAddr != "" {
		grpcSrv, err := server.New(config.GRPCAddr, 0)
		if err != nil {
			return fmt.Errorf("server.New: %w", err)
		}
		logger.Infof("serving grpc health on %s", grpcSrv.Addr())
		g.Go(func() error {
			return grpcSrv.ServeGRPC(ctx, server.NewHealthGRPC(ctx))
		})
	}

	return g.Wait()
}
