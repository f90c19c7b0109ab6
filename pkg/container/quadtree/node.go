/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package quadtree implements an unbalanced point quadtree: every node is
// anchored at one inserted point and owns a rectangle that its children
// split around that point.
package quadtree

import (
	"fmt"

	"github.com/go-sod/dotquad/pkg/geom"
)

// Point is the only capability the tree needs from a payload.
type Point interface {
	X() float64
	Y() float64
}

// Quadrant numbers follow screen coordinates, y growing downwards.
type Quadrant int

const (
	TopRight Quadrant = iota + 1
	TopLeft
	BottomLeft
	BottomRight
)

// Quadrants lists the child slots in traversal order.
var Quadrants = [4]Quadrant{TopRight, TopLeft, BottomLeft, BottomRight}

func (q Quadrant) Valid() bool {
	return q >= TopRight && q <= BottomRight
}

func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("quadrant(%d)", int(q))
	}
}

// Node holds one point and the region it was given by its parent. Anchor and
// region never change; only empty child slots get filled by Insert.
type Node[P Point] struct {
	anchor   P
	region   geom.Rect
	children [4]*Node[P]
}

// New creates a root holding seed over the universe rectangle. The seed is
// expected to lie inside universe and is not checked.
func New[P Point](seed P, universe geom.Rect) (*Node[P], error) {
	if err := universe.Validate(); err != nil {
		return nil, fmt.Errorf("quadtree.New: %w", err)
	}
	return &Node[P]{anchor: seed, region: universe}, nil
}

func (n *Node[P]) Anchor() P {
	return n.anchor
}

func (n *Node[P]) Region() geom.Rect {
	return n.region
}

// Child returns the child in quadrant q, or nil when the slot is empty or q
// is out of range.
func (n *Node[P]) Child(q Quadrant) *Node[P] {
	if !q.Valid() {
		return nil
	}
	return n.children[q-1]
}

func (n *Node[P]) HasChild(q Quadrant) bool {
	return n.Child(q) != nil
}

func (n *Node[P]) IsLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// QuadrantOf classifies p against the anchor. Points on a dividing line go to
// the right and top side.
func (n *Node[P]) QuadrantOf(p Point) Quadrant {
	right := p.X() >= n.anchor.X()
	top := p.Y() <= n.anchor.Y()
	switch {
	case right && top:
		return TopRight
	case top:
		return TopLeft
	case right:
		return BottomRight
	default:
		return BottomLeft
	}
}

// SubRegion is the part of the node's region that quadrant q covers.
func (n *Node[P]) SubRegion(q Quadrant) geom.Rect {
	ax, ay := n.anchor.X(), n.anchor.Y()
	r := n.region
	switch q {
	case TopRight:
		return geom.Rect{X1: ax, Y1: r.Y1, X2: r.X2, Y2: ay}
	case TopLeft:
		return geom.Rect{X1: r.X1, Y1: r.Y1, X2: ax, Y2: ay}
	case BottomLeft:
		return geom.Rect{X1: r.X1, Y1: ay, X2: ax, Y2: r.Y2}
	case BottomRight:
		return geom.Rect{X1: ax, Y1: ay, X2: r.X2, Y2: r.Y2}
	default:
		panic(fmt.Sprintf("quadtree: invalid quadrant %d", int(q)))
	}
}

// Insert walks down to the first empty slot for p and hangs a new leaf
// there. Equal coordinates are not merged.
func (n *Node[P]) Insert(p P) {
	current := n
	for {
		q := current.QuadrantOf(p)
		next := current.children[q-1]
		if next == nil {
			current.children[q-1] = &Node[P]{anchor: p, region: current.SubRegion(q)}
			return
		}
		current = next
	}
}
