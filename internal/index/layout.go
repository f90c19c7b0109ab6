package index

import (
	"fmt"

	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/pkg/container/quadtree"
	"github.com/go-sod/dotquad/pkg/geom"
)

// Layout describes one tree node for renderers: its dot, the region it
// splits and the children hanging off each quadrant.
type Layout struct {
	Dot      *dot.Dot  `json:"dot"`
	Quadrant int       `json:"quadrant,omitempty"`
	Depth    int       `json:"depth"`
	Region   geom.Rect `json:"region"`
	Children []*Layout `json:"children,omitempty"`
}

func (i *Index) Layout() (*Layout, error) {
	i.mtx.RLock()
	defer i.mtx.RUnlock()
	if i.root == nil {
		return nil, fmt.Errorf("layout: %w", ErrEmpty)
	}
	return layoutOf(i.root, 0, 0), nil
}

// Height is 0 for an empty index.
func (i *Index) Height() int {
	i.mtx.RLock()
	defer i.mtx.RUnlock()
	if i.root == nil {
		return 0
	}
	return i.root.Height()
}

func layoutOf(n *quadtree.Node[*dot.Dot], q quadtree.Quadrant, depth int) *Layout {
	l := &Layout{
		Dot:      n.Anchor(),
		Quadrant: int(q),
		Depth:    depth,
		Region:   n.Region(),
	}
	for _, child := range quadtree.Quadrants {
		if n.HasChild(child) {
			l.Children = append(l.Children, layoutOf(n.Child(child), child, depth+1))
		}
	}
	return l
}
