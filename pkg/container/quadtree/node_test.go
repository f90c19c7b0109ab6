package quadtree

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-sod/dotquad/pkg/geom"
)

type dot struct {
	name string
	x, y float64
}

func (d *dot) X() float64 { return d.x }
func (d *dot) Y() float64 { return d.y }

var universe = geom.Rect{X1: 0, Y1: 0, X2: 800, Y2: 600}

func newTree(t *testing.T, seed *dot, rest ...*dot) *Node[*dot] {
	t.Helper()
	root, err := New(seed, universe)
	if err != nil {
		t.Fatalf("creating tree: %v", err)
	}
	for _, d := range rest {
		root.Insert(d)
	}
	return root
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		universe    geom.Rect
		expectedErr error
	}{
		{name: "positive", universe: universe},
		{name: "positive_degenerate", universe: geom.Rect{X1: 5, Y1: 5, X2: 5, Y2: 5}},
		{name: "negative_inverted", universe: geom.Rect{X1: 800, Y1: 600}, expectedErr: geom.ErrInvalidRect},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			root, err := New(&dot{x: 5, y: 5}, test.universe)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("creating tree, got error: %v, expected: %v", err, test.expectedErr)
			}
			if err == nil && (root.Size() != 1 || !root.IsLeaf()) {
				t.Errorf("new tree must be a single leaf, got: %s", spew.Sdump(root))
			}
		})
	}
}

func TestNode_QuadrantOf(t *testing.T) {
	root := newTree(t, &dot{x: 400, y: 300})
	tests := []struct {
		name     string
		p        *dot
		expected Quadrant
	}{
		{name: "top_right", p: &dot{x: 500, y: 100}, expected: TopRight},
		{name: "top_left", p: &dot{x: 100, y: 100}, expected: TopLeft},
		{name: "bottom_left", p: &dot{x: 100, y: 500}, expected: BottomLeft},
		{name: "bottom_right", p: &dot{x: 500, y: 500}, expected: BottomRight},
		{name: "same_point", p: &dot{x: 400, y: 300}, expected: TopRight},
		{name: "vertical_line_below", p: &dot{x: 400, y: 500}, expected: BottomRight},
		{name: "horizontal_line_left", p: &dot{x: 250, y: 300}, expected: TopLeft},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := root.QuadrantOf(test.p); got != test.expected {
				t.Errorf("quadrant of (%v,%v), got: %v, expected: %v", test.p.x, test.p.y, got, test.expected)
			}
		})
	}
}

func TestNode_SubRegionTiling(t *testing.T) {
	root := newTree(t, &dot{x: 400, y: 300})
	var area float64
	for _, q := range Quadrants {
		r := root.SubRegion(q)
		if err := r.Validate(); err != nil {
			t.Fatalf("quadrant %v region: %v", q, err)
		}
		area += r.Width() * r.Height()
	}
	if area != universe.Width()*universe.Height() {
		t.Errorf("sub regions must tile the parent region, got area: %v, expected: %v",
			area, universe.Width()*universe.Height())
	}
	expected := map[Quadrant]geom.Rect{
		TopRight:    {X1: 400, Y1: 0, X2: 800, Y2: 300},
		TopLeft:     {X1: 0, Y1: 0, X2: 400, Y2: 300},
		BottomLeft:  {X1: 0, Y1: 300, X2: 400, Y2: 600},
		BottomRight: {X1: 400, Y1: 300, X2: 800, Y2: 600},
	}
	for q, r := range expected {
		if got := root.SubRegion(q); got != r {
			t.Errorf("quadrant %v region, got: %v, expected: %v", q, got, r)
		}
	}
}

func TestNode_Insert(t *testing.T) {
	a := &dot{name: "A", x: 400, y: 300}
	b := &dot{name: "B", x: 150, y: 450}
	c := &dot{name: "C", x: 250, y: 550}
	root := newTree(t, a, b, c)

	nodeB := root.Child(BottomLeft)
	if nodeB == nil || nodeB.Anchor() != b {
		t.Fatalf("B must hang in the bottom-left quadrant of A, got: %s", spew.Sdump(root))
	}
	if got := nodeB.Region(); got != (geom.Rect{X1: 0, Y1: 300, X2: 400, Y2: 600}) {
		t.Errorf("B region, got: %v", got)
	}
	nodeC := nodeB.Child(BottomRight)
	if nodeC == nil || nodeC.Anchor() != c {
		t.Fatalf("C must hang in the bottom-right quadrant of B, got: %s", spew.Sdump(root))
	}
	if got := nodeC.Region(); got != (geom.Rect{X1: 150, Y1: 450, X2: 400, Y2: 600}) {
		t.Errorf("C region, got: %v", got)
	}
	for _, q := range []Quadrant{TopRight, TopLeft, BottomRight} {
		if root.HasChild(q) {
			t.Errorf("root must not have a child in quadrant %v", q)
		}
	}
	if root.Child(Quadrant(0)) != nil || root.Child(Quadrant(5)) != nil {
		t.Errorf("out of range quadrants must have no child")
	}
}

func TestNode_InsertDuplicates(t *testing.T) {
	a := &dot{name: "A", x: 400, y: 300}
	first := &dot{name: "dup1", x: 100, y: 100}
	second := &dot{name: "dup2", x: 100, y: 100}
	root := newTree(t, a, first, second)

	if root.Size() != 3 {
		t.Fatalf("duplicates must be stored as distinct nodes, got size: %d", root.Size())
	}
	n := root.Child(TopLeft)
	if n.Anchor() != first || n.Child(TopRight) == nil || n.Child(TopRight).Anchor() != second {
		t.Errorf("the second duplicate must chain under the first one, got: %s", spew.Sdump(root))
	}
}
