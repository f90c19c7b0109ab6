package dot

import (
	"math"
	"time"

	"github.com/go-sod/dotquad/pkg/container/quadtree"
	"github.com/go-sod/dotquad/pkg/geom"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"
)

var _ quadtree.Point = (*Dot)(nil)

// Dot is the payload stored in the index. Two dots are the same dot only if
// they are the same pointer; the ID exists for clients.
type Dot struct {
	ID        uuid.UUID   `json:"id"`
	PosX      float64     `json:"x"`
	PosY      float64     `json:"y"`
	Label     string      `json:"label,omitempty"`
	Extra     interface{} `json:"extra,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

func New(x, y float64, label string, extra interface{}) *Dot {
	return &Dot{
		ID:        uuid.New(),
		PosX:      x,
		PosY:      y,
		Label:     label,
		Extra:     extra,
		CreatedAt: time.Now().UTC(),
	}
}

// Random places a dot on integer coordinates inside r, the way mouse clicks
// land on a canvas.
func Random(r geom.Rect) *Dot {
	return New(r.X1+randomOffset(r.Width()), r.Y1+randomOffset(r.Height()), "", nil)
}

func randomOffset(span float64) float64 {
	if span <= 0 {
		return 0
	}
	n := math.Min(math.Floor(span), math.MaxUint32-1)
	return float64(fastrand.Uint32n(uint32(n) + 1))
}

func (d *Dot) X() float64 {
	return d.PosX
}

func (d *Dot) Y() float64 {
	return d.PosY
}
