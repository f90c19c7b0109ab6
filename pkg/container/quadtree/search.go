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
package quadtree

import "github.com/go-sod/dotquad/pkg/geom"

// Size counts the node and all of its descendants.
func (n *Node[P]) Size() int {
	size := 1
	for _, c := range n.children {
		if c != nil {
			size += c.Size()
		}
	}
	return size
}

// Height is the number of nodes on the longest root-to-leaf path.
func (n *Node[P]) Height() int {
	var h int
	for _, c := range n.children {
		if c != nil {
			if ch := c.Height(); ch > h {
				h = ch
			}
		}
	}
	return h + 1
}

// Points lists every payload in pre-order: the node itself, then its
// children in quadrant order.
func (n *Node[P]) Points() []P {
	points := make([]P, 0, n.Size())
	return n.appendPoints(points)
}

func (n *Node[P]) appendPoints(points []P) []P {
	points = append(points, n.anchor)
	for _, c := range n.children {
		if c != nil {
			points = c.appendPoints(points)
		}
	}
	return points
}

// Walk visits the subtree in pre-order, passing each node with its depth
// (0 for n). Returning false from fn skips that node's children.
func (n *Node[P]) Walk(fn func(node *Node[P], depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node[P]) walk(fn func(node *Node[P], depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		if c != nil {
			c.walk(fn, depth+1)
		}
	}
}

// FindInCircle returns the payloads within distance cr of (cx, cy), counting
// predicate calls in geom.Default.
func (n *Node[P]) FindInCircle(cx, cy, cr float64) []P {
	return n.FindInCircleCounted(geom.Default, cx, cy, cr)
}

// FindInCircleCounted is FindInCircle with the predicate calls counted in c.
// A subtree whose region misses the circle is skipped without looking at any
// of its points.
func (n *Node[P]) FindInCircleCounted(c *geom.Counters, cx, cy, cr float64) []P {
	var found []P
	return n.findInCircle(c, cx, cy, cr, found)
}

func (n *Node[P]) findInCircle(c *geom.Counters, cx, cy, cr float64, found []P) []P {
	if !c.CircleIntersectsRectangle(cx, cy, cr, n.region) {
		return found
	}
	if c.PointInCircle(n.anchor.X(), n.anchor.Y(), cx, cy, cr) {
		found = append(found, n.anchor)
	}
	for _, child := range n.children {
		if child != nil {
			found = child.findInCircle(c, cx, cy, cr, found)
		}
	}
	return found
}
