package geom

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidRect = errors.New("invalid rectangle")

// Rect is a closed axis-aligned rectangle in screen coordinates:
// (X1, Y1) is the upper-left corner and (X2, Y2) the bottom-right one.
type Rect struct {
	X1 float64 `json:"x1" toml:"x1"`
	Y1 float64 `json:"y1" toml:"y1"`
	X2 float64 `json:"x2" toml:"x2"`
	Y2 float64 `json:"y2" toml:"y2"`
}

func NewRect(x1, y1, x2, y2 float64) (Rect, error) {
	r := Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

func (r Rect) Validate() error {
	for _, v := range [...]float64{r.X1, r.Y1, r.X2, r.Y2} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %v has a NaN bound", ErrInvalidRect, r)
		}
	}
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return fmt.Errorf("%w: %v is not ordered (x1 <= x2, y1 <= y2)", ErrInvalidRect, r)
	}
	return nil
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Clamp returns the point of r closest to (x, y).
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return clamp(x, r.X1, r.X2), clamp(y, r.Y1, r.Y2)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X1, r.Y1, r.X2, r.Y2)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
