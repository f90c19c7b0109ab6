package insert

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/internal/httputil"
	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/internal/logging"
	"github.com/google/uuid"
)

type Inserter interface {
	Insert(ctx context.Context, dots ...*dot.Dot) error
	Size() int
}

type Request struct {
	Dots []DotRequest `json:"dots"`
}

type DotRequest struct {
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Label string      `json:"label,omitempty"`
	Extra interface{} `json:"extra,omitempty"`
}

type Response struct {
	Size int         `json:"size"`
	IDs  []uuid.UUID `json:"ids"`
}

func NewHandler(cfg *Config, idx Inserter) (http.Handler, error) {
	return &handler{
		cfg: cfg,
		idx: idx,
	}, nil
}

type handler struct {
	idx Inserter
	cfg *Config
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)

	if !httputil.DecodeJSON(ctx, w, r, &req) {
		return
	}
	if len(req.Dots) == 0 {
		httputil.RespBadRequest(ctx, w, `{"error": "dots must not be empty"}`)
		return
	}
	if len(req.Dots) > h.cfg.MaxDotsLen {
		httputil.RespBadRequest(ctx, w, `{"error": "too many dots, max allowed len is %d"}`, h.cfg.MaxDotsLen)
		return
	}

	dots := make([]*dot.Dot, len(req.Dots))
	resp := Response{IDs: make([]uuid.UUID, len(req.Dots))}
	for i, d := range req.Dots {
		dots[i] = dot.New(d.X, d.Y, d.Label, d.Extra)
		resp.IDs[i] = dots[i].ID
	}

	if err := h.idx.Insert(ctx, dots...); err != nil {
		switch {
		case errors.Is(err, index.ErrOutOfBounds), errors.Is(err, index.ErrInvalidQuery):
			httputil.RespBadRequest(ctx, w, `{"error": %q}`, err.Error())
		case errors.Is(err, index.ErrFull):
			httputil.RespError(ctx, w, http.StatusConflict, `{"error": %q}`, err.Error())
		default:
			httputil.RespInternalError(ctx, w, `{"error": "insert failed, %v"}`, err)
		}
		return
	}
	resp.Size = h.idx.Size()
	logger.Infof("inserted %d dots", len(dots))
	httputil.RespJSON(ctx, w, http.StatusOK, resp)
}
