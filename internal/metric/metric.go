// Package metric defines the OpenCensus measures recorded by the index and
// exposes them to Prometheus.
package metric

import (
	"fmt"
	"net/http"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
)

const namespace = "dotquad"

var (
	InsertedDots   = stats.Int64("dotquad/index/inserted_dots", "Dots inserted into the index", stats.UnitDimensionless)
	RejectedDots   = stats.Int64("dotquad/index/rejected_dots", "Dots rejected by the index", stats.UnitDimensionless)
	Queries        = stats.Int64("dotquad/index/queries", "Circle queries served", stats.UnitDimensionless)
	RectangleTests = stats.Int64("dotquad/index/rectangle_tests", "Circle-rectangle tests per query", stats.UnitDimensionless)
	InCircleTests  = stats.Int64("dotquad/index/in_circle_tests", "Point-in-circle tests per query", stats.UnitDimensionless)
	Hits           = stats.Int64("dotquad/index/hits", "Dots found per query", stats.UnitDimensionless)
	Size           = stats.Int64("dotquad/index/size", "Dots stored in the index", stats.UnitDimensionless)
)

var perQuery = view.Distribution(0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 4096)

var Views = []*view.View{
	{Name: "index_inserted_dots_total", Measure: InsertedDots, Aggregation: view.Sum()},
	{Name: "index_rejected_dots_total", Measure: RejectedDots, Aggregation: view.Sum()},
	{Name: "index_queries_total", Measure: Queries, Aggregation: view.Count()},
	{Name: "index_rectangle_tests", Measure: RectangleTests, Aggregation: perQuery},
	{Name: "index_in_circle_tests", Measure: InCircleTests, Aggregation: perQuery},
	{Name: "index_hits", Measure: Hits, Aggregation: perQuery},
	{Name: "index_size", Measure: Size, Aggregation: view.LastValue()},
}

func Register() error {
	if err := view.Register(Views...); err != nil {
		return fmt.Errorf("registering views: %w", err)
	}
	return nil
}

func Unregister() {
	view.Unregister(Views...)
}

// NewHandler registers the views and returns the Prometheus scrape handler.
func NewHandler() (http.Handler, error) {
	if err := Register(); err != nil {
		return nil, err
	}
	exporter, err := prometheus.NewExporter(prometheus.Options{Namespace: namespace})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}
	return exporter, nil
}
