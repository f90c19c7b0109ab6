package geom

import "go.uber.org/atomic"

// Counters tracks how many times each predicate ran. The zero value is ready
// to use. Counts are atomic, but a measurement is only meaningful when a
// single query runs between Reset and the reads.
type Counters struct {
	inCircle   atomic.Int64
	circleRect atomic.Int64
}

// Default is the process-wide counter set used by the package-level
// predicates.
var Default = &Counters{}

func (c *Counters) PointInCircle(px, py, cx, cy, r float64) bool {
	c.inCircle.Inc()
	return inCircle(px, py, cx, cy, r)
}

// CircleIntersectsRectangle reports whether the circle and the closed
// rectangle share at least one point.
func (c *Counters) CircleIntersectsRectangle(cx, cy, r float64, rect Rect) bool {
	c.circleRect.Inc()
	nx, ny := rect.Clamp(cx, cy)
	return inCircle(nx, ny, cx, cy, r)
}

func (c *Counters) InCircleTests() int64 {
	return c.inCircle.Load()
}

func (c *Counters) CircleRectangleTests() int64 {
	return c.circleRect.Load()
}

func (c *Counters) ResetInCircleTests() {
	c.inCircle.Store(0)
}

func (c *Counters) ResetCircleRectangleTests() {
	c.circleRect.Store(0)
}

func (c *Counters) Reset() {
	c.ResetInCircleTests()
	c.ResetCircleRectangleTests()
}

func PointInCircle(px, py, cx, cy, r float64) bool {
	return Default.PointInCircle(px, py, cx, cy, r)
}

func CircleIntersectsRectangle(cx, cy, r float64, rect Rect) bool {
	return Default.CircleIntersectsRectangle(cx, cy, r, rect)
}

func InCircleTests() int64 {
	return Default.InCircleTests()
}

func CircleRectangleTests() int64 {
	return Default.CircleRectangleTests()
}

func ResetInCircleTests() {
	Default.ResetInCircleTests()
}

func ResetCircleRectangleTests() {
	Default.ResetCircleRectangleTests()
}

// A negative radius is an empty circle.
func inCircle(px, py, cx, cy, r float64) bool {
	if r < 0 {
		return false
	}
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}
