package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sod/dotquad/internal/logging"
	"github.com/go-sod/dotquad/pkg/container/quadtree"
	"github.com/go-sod/dotquad/pkg/geom"
)

var ErrMismatch = errors.New("verification mismatch")

type point [2]float64

func (p point) X() float64 { return p[0] }
func (p point) Y() float64 { return p[1] }

// Failure is a probe whose measured counts differ from the expected ones.
type Failure struct {
	Scenario       string
	Probe          Probe
	RectangleTests int64
	InCircleTests  int64
	Hits           int
}

type Report struct {
	Scenarios int
	Probes    int
	Failures  []Failure
}

func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// Run measures with the process-wide counters in geom.Default, resetting them
// before every probe, so it must not run alongside other queries that use
// them.
func Run(ctx context.Context, suite *Suite) (*Report, error) {
	logger := logging.FromContext(ctx)
	report := &Report{}
	for _, sc := range suite.Scenarios {
		tree, err := build(sc)
		if err != nil {
			return nil, err
		}
		report.Scenarios++
		bad := 0
		for _, probe := range sc.Probes {
			report.Probes++
			geom.ResetInCircleTests()
			geom.ResetCircleRectangleTests()
			hits := len(tree.FindInCircle(probe.X, probe.Y, probe.R))

			f := Failure{
				Scenario:       sc.Name,
				Probe:          probe,
				RectangleTests: geom.CircleRectangleTests(),
				InCircleTests:  geom.InCircleTests(),
				Hits:           hits,
			}
			if f.RectangleTests != probe.RectangleTests {
				logger.Errorf("%s %v: wrong # circle-rectangle, got %d but expected %d",
					sc.Name, probe, f.RectangleTests, probe.RectangleTests)
			}
			if f.InCircleTests != probe.InCircleTests {
				logger.Errorf("%s %v: wrong # in circle, got %d but expected %d",
					sc.Name, probe, f.InCircleTests, probe.InCircleTests)
			}
			if f.Hits != probe.Hits {
				logger.Errorf("%s %v: wrong # hits, got %d but expected %d", sc.Name, probe, f.Hits, probe.Hits)
			}
			if f.RectangleTests != probe.RectangleTests || f.InCircleTests != probe.InCircleTests || f.Hits != probe.Hits {
				report.Failures = append(report.Failures, f)
				bad++
			}
		}
		if bad == 0 {
			logger.Infof("%s passed, %d probes", sc.Name, len(sc.Probes))
		}
	}
	if !report.Passed() {
		return report, fmt.Errorf("%w: %d of %d probes failed", ErrMismatch, len(report.Failures), report.Probes)
	}
	return report, nil
}

func build(sc Scenario) (*quadtree.Node[point], error) {
	if len(sc.Points) == 0 {
		return nil, fmt.Errorf("scenario %q has no points", sc.Name)
	}
	tree, err := quadtree.New(point(sc.Points[0]), sc.Universe)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	for _, p := range sc.Points[1:] {
		tree.Insert(point(p))
	}
	return tree, nil
}
