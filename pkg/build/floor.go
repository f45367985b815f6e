package build

import "floorwright/pkg/mesh"

// floorSlab emits one slab covering the footprint plus a fixed margin,
// with its top face at elevation 0.
func (b *builder) floorSlab() *mesh.Mesh {
	width := b.bounds.width() + 2*floorMargin
	depth := b.bounds.depth() + 2*floorMargin

	floor := mesh.NewBox(width, b.plan.FloorThickness, depth)
	floor.SetColor(220, 220, 220, 255)
	floor.ApplyTranslation(
		(b.bounds.minX+b.bounds.maxX)/2,
		-b.plan.FloorThickness/2,
		(b.bounds.minY+b.bounds.maxY)/2,
	)
	return floor
}
