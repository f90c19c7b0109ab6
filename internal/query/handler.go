package query

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/internal/httputil"
	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/pkg/geom"
	"github.com/go-sod/dotquad/pkg/pqueue"
)

type Finder interface {
	FindInCircle(ctx context.Context, cx, cy, r float64) (index.Result, error)
}

type Request struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
	// Limit > 0 keeps only the nearest Limit dots, closest first.
	Limit int `json:"limit,omitempty"`
}

type Hit struct {
	*dot.Dot
	Distance float64 `json:"distance"`
}

type Response struct {
	Dots           []Hit `json:"dots"`
	RectangleTests int64 `json:"rectangleTests"`
	InCircleTests  int64 `json:"circleTests"`
}

func NewHandler(cfg *Config, finder Finder) (http.Handler, error) {
	return &handler{
		cfg:    cfg,
		finder: finder,
	}, nil
}

type handler struct {
	finder Finder
	cfg    *Config
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	if !httputil.DecodeJSON(ctx, w, r, &req) {
		return
	}
	if h.cfg.MaxRadius > 0 && req.R > h.cfg.MaxRadius {
		httputil.RespBadRequest(ctx, w, `{"error": "radius is too large, max allowed radius is %g"}`, h.cfg.MaxRadius)
		return
	}

	res, err := h.finder.FindInCircle(ctx, req.X, req.Y, req.R)
	if err != nil {
		if errors.Is(err, index.ErrInvalidQuery) {
			httputil.RespBadRequest(ctx, w, `{"error": %q}`, err.Error())
			return
		}
		httputil.RespInternalError(ctx, w, `{"error": "query processing error, %v"}`, err)
		return
	}

	resp := Response{
		Dots:           hits(req, res.Dots),
		RectangleTests: res.RectangleTests,
		InCircleTests:  res.InCircleTests,
	}
	httputil.RespJSON(ctx, w, http.StatusOK, resp)
}

// hits keeps the tree's pre-order unless a limit asks for nearest first.
func hits(req Request, dots []*dot.Dot) []Hit {
	if req.Limit <= 0 {
		res := make([]Hit, len(dots))
		for i, d := range dots {
			res[i] = Hit{Dot: d, Distance: geom.EuclideanDistance(req.X, req.Y, d.X(), d.Y())}
		}
		return res
	}

	queue := pqueue.New(pqueue.WithCap[Hit](uint(req.Limit)))
	for _, d := range dots {
		dist := geom.EuclideanDistance(req.X, req.Y, d.X(), d.Y())
		queue.Push(Hit{Dot: d, Distance: dist}, dist)
	}
	return queue.PopAll()
}
