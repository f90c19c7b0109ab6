// Package browse serves read-only views of the index: every stored dot, and
// the node layout a renderer needs to draw the partition.
package browse

import (
	"errors"
	"net/http"

	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/internal/httputil"
	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/pkg/geom"
)

type Browser interface {
	Universe() geom.Rect
	Size() int
	Height() int
	Points() []*dot.Dot
	Layout() (*index.Layout, error)
}

type PointsResponse struct {
	Size int        `json:"size"`
	Dots []*dot.Dot `json:"dots"`
}

type LayoutResponse struct {
	Universe geom.Rect     `json:"universe"`
	Size     int           `json:"size"`
	Height   int           `json:"height"`
	Root     *index.Layout `json:"root"`
}

func NewPointsHandler(b Browser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if r.Method != http.MethodGet {
			httputil.RespMethodNotAllowed(ctx, w, r.Method)
			return
		}
		dots := b.Points()
		httputil.RespJSON(ctx, w, http.StatusOK, PointsResponse{Size: len(dots), Dots: dots})
	})
}

// NewLayoutHandler answers an empty index with a null root.
func NewLayoutHandler(b Browser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if r.Method != http.MethodGet {
			httputil.RespMethodNotAllowed(ctx, w, r.Method)
			return
		}
		root, err := b.Layout()
		if err != nil && !errors.Is(err, index.ErrEmpty) {
			httputil.RespInternalError(ctx, w, `{"error": "layout error, %v"}`, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, LayoutResponse{
			Universe: b.Universe(),
			Size:     b.Size(),
			Height:   b.Height(),
			Root:     root,
		})
	})
}
