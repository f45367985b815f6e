// Package build synthesizes the 3D building model: wall, door and window
// geometry from normalized detections, the floor slab, perimeter railings
// and furniture placements, accumulated into an explicit scene value.
package build

import (
	"errors"
	"fmt"

	"floorwright/pkg/assets"
	"floorwright/pkg/mesh"
	"floorwright/pkg/plan"
	"floorwright/pkg/scene"
	"floorwright/pkg/snap"
)

const (
	doorClearance = 50.0 // headroom added above the door opening
	floorMargin   = 10.0
	railingHeight = 40.0
)

// footprint is the axis-aligned bounding box of all normalized endpoints.
type footprint struct {
	minX, maxX, minY, maxY float64
}

func (f footprint) width() float64 { return f.maxX - f.minX }
func (f footprint) depth() float64 { return f.maxY - f.minY }

// edge is an order-normalized endpoint pair used to track which border
// segments are already occupied by structural geometry.
type edge struct {
	ax, ay, bx, by float64
}

func edgeKey(p1, p2 plan.Point) edge {
	if p2.X < p1.X || (p2.X == p1.X && p2.Y < p1.Y) {
		p1, p2 = p2, p1
	}
	return edge{p1.X, p1.Y, p2.X, p2.Y}
}

// item is one produced mesh with its naming category.
type item struct {
	category string
	m        *mesh.Mesh
}

type builder struct {
	plan    *plan.FloorPlan
	cache   *assets.Cache
	bounds  footprint
	items   []item
	claimed map[edge]struct{}
}

func (b *builder) add(category string, m *mesh.Mesh) {
	b.items = append(b.items, item{category: category, m: m})
}

func (b *builder) claim(p1, p2 plan.Point) {
	b.claimed[edgeKey(p1, p2)] = struct{}{}
}

func computeFootprint(elems []plan.Element) footprint {
	f := footprint{
		minX: elems[0].P1.X, maxX: elems[0].P1.X,
		minY: elems[0].P1.Y, maxY: elems[0].P1.Y,
	}
	for _, e := range elems {
		for _, p := range []plan.Point{e.P1, e.P2} {
			if p.X < f.minX {
				f.minX = p.X
			}
			if p.X > f.maxX {
				f.maxX = p.X
			}
			if p.Y < f.minY {
				f.minY = p.Y
			}
			if p.Y > f.maxY {
				f.maxY = p.Y
			}
		}
	}
	return f
}

// guardedSize returns the bounding box extents with zero axes replaced by
// a small epsilon so scale divisions stay finite.
func guardedSize(bb mesh.Bounds) [3]float64 {
	size := bb.Size()
	for ax := 0; ax < 3; ax++ {
		if size[ax] == 0 {
			size[ax] = 1e-3
		}
	}
	return size
}

// Reconstruct runs one full reconstruction job: normalize the detections,
// emit the floor, structural geometry, railings and furniture, and return
// the assembled scene. Node order is deterministic: floor first, then
// structural geometry in input order, then railings, then furniture.
func Reconstruct(p *plan.FloorPlan, furniture []plan.Furniture, cache *assets.Cache) (*scene.Scene, error) {
	elems := snap.Normalize(p.Elements)
	if len(elems) == 0 {
		return nil, errors.New("reconstruct: floor plan has no detection elements")
	}

	b := &builder{
		plan:    p,
		cache:   cache,
		bounds:  computeFootprint(elems),
		claimed: make(map[edge]struct{}),
	}

	b.add("floor", b.floorSlab())
	for _, e := range elems {
		b.buildElement(e)
	}
	b.buildRailings()

	s := scene.New()
	for i, it := range b.items {
		s.Add(fmt.Sprintf("%s_%03d", it.category, i), it.m)
	}
	b.placeFurniture(s, furniture)
	return s, nil
}
