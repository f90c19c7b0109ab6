// Package index keeps a dot quadtree behind a lock and measures every query.
// Unlike the bare tree it has an empty state: the first inserted dot becomes
// the root.
package index

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/internal/logging"
	"github.com/go-sod/dotquad/internal/metric"
	"github.com/go-sod/dotquad/pkg/container/quadtree"
	"github.com/go-sod/dotquad/pkg/geom"
	"go.opencensus.io/stats"
)

var (
	ErrEmpty        = errors.New("index is empty")
	ErrOutOfBounds  = errors.New("dot is outside the universe")
	ErrFull         = errors.New("index is full")
	ErrInvalidQuery = errors.New("invalid query")
)

type ProvideFn func() (*Index, error)

type Option func(*Index)

type Options struct {
	maxPoints    int
	strictBounds bool
}

func WithMaxPoints(n int) Option {
	return func(i *Index) {
		i.opts.maxPoints = n
	}
}

func WithStrictBounds(strict bool) Option {
	return func(i *Index) {
		i.opts.strictBounds = strict
	}
}

type Index struct {
	mtx      sync.RWMutex
	opts     Options
	universe geom.Rect
	root     *quadtree.Node[*dot.Dot]
	size     int
}

func New(universe geom.Rect, opts ...Option) (*Index, error) {
	if err := universe.Validate(); err != nil {
		return nil, fmt.Errorf("index.New: %w", err)
	}
	i := &Index{universe: universe, opts: Options{strictBounds: true}}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

func (i *Index) Universe() geom.Rect {
	return i.universe
}

// Insert adds the dots in order. A batch is rejected as a whole when any dot
// is outside the universe (strict bounds) or the batch would overflow the
// configured capacity.
func (i *Index) Insert(ctx context.Context, dots ...*dot.Dot) error {
	logger := logging.FromContext(ctx)
	i.mtx.Lock()
	defer i.mtx.Unlock()

	if err := i.admit(dots); err != nil {
		stats.Record(ctx, metric.RejectedDots.M(int64(len(dots))))
		return err
	}
	for _, d := range dots {
		if i.root == nil {
			root, err := quadtree.New(d, i.universe)
			if err != nil {
				return fmt.Errorf("creating root: %w", err)
			}
			i.root = root
		} else {
			i.root.Insert(d)
		}
		i.size++
	}

	stats.Record(ctx, metric.InsertedDots.M(int64(len(dots))), metric.Size.M(int64(i.size)))
	logger.Debugf("inserted %d dots, index size %d", len(dots), i.size)
	return nil
}

func (i *Index) admit(dots []*dot.Dot) error {
	if i.opts.maxPoints > 0 && i.size+len(dots) > i.opts.maxPoints {
		return fmt.Errorf("%w: %d stored, %d requested, limit %d", ErrFull, i.size, len(dots), i.opts.maxPoints)
	}
	for _, d := range dots {
		if d == nil {
			return fmt.Errorf("%w: nil dot", ErrInvalidQuery)
		}
		if math.IsNaN(d.X()) || math.IsNaN(d.Y()) {
			return fmt.Errorf("%w: dot %s has NaN coordinates", ErrOutOfBounds, d.ID)
		}
		if i.opts.strictBounds && !i.universe.Contains(d.X(), d.Y()) {
			return fmt.Errorf("%w: (%g,%g) not in %v", ErrOutOfBounds, d.X(), d.Y(), i.universe)
		}
	}
	return nil
}

// Result is a query answer with the cost it took to compute.
type Result struct {
	Dots           []*dot.Dot
	RectangleTests int64
	InCircleTests  int64
}

// FindInCircle queries the tree with a private counter set, so concurrent
// queries report their own costs. An empty index answers with no dots.
func (i *Index) FindInCircle(ctx context.Context, cx, cy, r float64) (Result, error) {
	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsNaN(r) {
		return Result{}, fmt.Errorf("%w: NaN in circle (%g,%g)@%g", ErrInvalidQuery, cx, cy, r)
	}
	i.mtx.RLock()
	defer i.mtx.RUnlock()

	res := Result{Dots: []*dot.Dot{}}
	if i.root != nil {
		counters := &geom.Counters{}
		if found := i.root.FindInCircleCounted(counters, cx, cy, r); found != nil {
			res.Dots = found
		}
		res.RectangleTests = counters.CircleRectangleTests()
		res.InCircleTests = counters.InCircleTests()
	}

	stats.Record(ctx,
		metric.Queries.M(1),
		metric.RectangleTests.M(res.RectangleTests),
		metric.InCircleTests.M(res.InCircleTests),
		metric.Hits.M(int64(len(res.Dots))),
	)
	logging.FromContext(ctx).Debugf("circle (%g,%g)@%g: %d hits, %d rectangle tests, %d in circle tests",
		cx, cy, r, len(res.Dots), res.RectangleTests, res.InCircleTests)
	return res, nil
}

func (i *Index) Size() int {
	i.mtx.RLock()
	defer i.mtx.RUnlock()
	return i.size
}

func (i *Index) Points() []*dot.Dot {
	i.mtx.RLock()
	defer i.mtx.RUnlock()
	if i.root == nil {
		return []*dot.Dot{}
	}
	return i.root.Points()
}

func (i *Index) Reset(ctx context.Context) {
	i.mtx.Lock()
	i.root = nil
	i.size = 0
	i.mtx.Unlock()
	stats.Record(ctx, metric.Size.M(0))
	logging.FromContext(ctx).Infof("index reset")
}
