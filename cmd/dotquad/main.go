package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-sod/dotquad/internal/buildinfo"
	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/internal/httputil"
	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/internal/insert"
	"github.com/go-sod/dotquad/internal/integration"
	"github.com/go-sod/dotquad/internal/logging"
	"github.com/go-sod/dotquad/internal/query"
	"github.com/go-sod/dotquad/internal/shutdown"
	"github.com/go-sod/dotquad/internal/verify"
	"github.com/go-sod/dotquad/pkg/rworker"
)

const (
	CommandVerify  = "verify"
	CommandInsert  = "insert"
	CommandFind    = "find"
	CommandPoints  = "points"
	CommandSeed    = "seed"
	CommandVersion = "version"
)

var errUsage = errors.New("usage")

const usage = `usage: dotquad <command> [flags] [args]

commands:
  verify [-f suite.toml]            run the search cost scenarios locally
  insert [-addr host:port] x y      insert one dot
  find [-addr host:port] [-limit k] x y r
                                    list dots inside the circle
  points [-addr host:port]          list every stored dot
  seed [-addr host:port] [-n N]     insert N random dots
  version                           print the build version
`

func main() {
	ctx, done := shutdown.New()
	err := run(ctx, os.Args[1:], os.Stdout)
	done()
	switch {
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	case err != nil:
		logging.FromContext(ctx).Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case CommandVerify:
		return runVerify(ctx, args, out)
	case CommandInsert, CommandFind, CommandPoints, CommandSeed:
		return runRemote(ctx, cmd, args, out)
	case CommandVersion:
		_, err := fmt.Fprintf(out, "%s %s %s\n", buildinfo.Info.Name(), buildinfo.Info.Tag(), buildinfo.Info.Time())
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runVerify(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(CommandVerify, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("f", "", "TOML suite to run instead of the built-in one")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	suite, err := verify.Builtin()
	if *file != "" {
		suite, err = verify.Load(*file)
	}
	if err != nil {
		return err
	}
	report, err := verify.Run(ctx, suite)
	if report != nil {
		_, _ = fmt.Fprintf(out, "%d scenarios, %d probes, %d failures\n",
			report.Scenarios, report.Probes, len(report.Failures))
	}
	return err
}

func runRemote(ctx context.Context, cmd string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addr := fs.String("addr", envOr("DOTQUAD_ADDR", "127.0.0.1:8787"), "dotquad-srv address")
	token := fs.String("token", os.Getenv("DOTQUAD_TOKEN"), "bearer token")
	label := fs.String("label", "", "label of the inserted dot")
	limit := fs.Int("limit", 0, "keep only the nearest dots found")
	n := fs.Int("n", 100, "number of dots to seed")
	batch := fs.Int("batch", 50, "dots per seed request")
	concurrency := fs.Int("c", 4, "seed requests in flight")
	universe := index.Universe{X2: 800, Y2: 600}
	fs.Var(&universeFlag{&universe}, "universe", "seed area as x1,y1,x2,y2")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	client, err := integration.NewClient(*addr, integration.WithHTTPClientConfig(httputil.HTTPClientConfig{BearerToken: *token}))
	if err != nil {
		return err
	}

	switch cmd {
	case CommandInsert:
		xy, err := floats(fs.Args(), 2)
		if err != nil {
			return err
		}
		resp, err := client.Insert(ctx, insert.DotRequest{X: xy[0], Y: xy[1], Label: *label})
		if err != nil {
			return err
		}
		return printJSON(out, resp)
	case CommandFind:
		xyr, err := floats(fs.Args(), 3)
		if err != nil {
			return err
		}
		resp, err := client.Find(ctx, query.Request{X: xyr[0], Y: xyr[1], R: xyr[2], Limit: *limit})
		if err != nil {
			return err
		}
		return printJSON(out, resp)
	case CommandPoints:
		resp, err := client.Points(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, resp)
	default:
		return seed(ctx, client, universe, *n, *batch, *concurrency, out)
	}
}

func seed(ctx context.Context, client *integration.Client, universe index.Universe, n, batch, concurrency int, out io.Writer) error {
	if batch <= 0 {
		batch = 1
	}
	logger := logging.FromContext(ctx)
	batches := (n + batch - 1) / batch
	err := rworker.Run(ctx, batches, concurrency, func(ctx context.Context, i int) error {
		size := batch
		if rest := n - i*batch; rest < size {
			size = rest
		}
		dots := make([]insert.DotRequest, size)
		for j := range dots {
			d := dot.Random(universe.Rect())
			dots[j] = insert.DotRequest{X: d.X(), Y: d.Y(), Label: "seed-" + strconv.Itoa(i*batch+j)}
		}
		resp, err := client.Insert(ctx, dots...)
		if err != nil {
			return fmt.Errorf("seed batch %d: %w", i, err)
		}
		logger.Debugf("seed batch %d: %d dots, index size %d", i, len(resp.IDs), resp.Size)
		return nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "seeded %d dots in %d requests\n", n, batches)
	return err
}

type universeFlag struct {
	u *index.Universe
}

func (f *universeFlag) String() string {
	if f.u == nil {
		return ""
	}
	return f.u.Rect().String()
}

func (f *universeFlag) Set(value string) error {
	return f.u.Decode(value)
}

func floats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d numbers, got %d", errUsage, n, len(args))
	}
	res := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		res[i] = v
	}
	return res, nil
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
