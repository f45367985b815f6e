package build

import (
	"math"

	"floorwright/pkg/plan"
)

// buildRailings rails the border edges of the footprint rectangle that no
// structural element claimed. Interior open edges are not checked. There
// is no procedural fallback: without a railing asset this is a no-op.
func (b *builder) buildRailings() {
	if _, ok := b.cache.Load("railing"); !ok {
		return
	}

	fp := b.bounds
	borders := [4][2]plan.Point{
		{{X: fp.minX, Y: fp.minY}, {X: fp.maxX, Y: fp.minY}},
		{{X: fp.maxX, Y: fp.minY}, {X: fp.maxX, Y: fp.maxY}},
		{{X: fp.maxX, Y: fp.maxY}, {X: fp.minX, Y: fp.maxY}},
		{{X: fp.minX, Y: fp.maxY}, {X: fp.minX, Y: fp.minY}},
	}

	for _, bd := range borders {
		if _, claimed := b.claimed[edgeKey(bd[0], bd[1])]; claimed {
			continue
		}
		dx := bd[1].X - bd[0].X
		dz := bd[1].Y - bd[0].Y
		length := math.Hypot(dx, dz)
		if length < 1e-3 {
			continue
		}

		rail, _ := b.cache.Instance("railing")
		size := guardedSize(rail.Bounds())
		rail.ApplyScale(length/size[0], railingHeight/size[1], 1.0)

		bb := rail.Bounds()
		c := bb.Center()
		rail.ApplyTranslation(-c[0], -bb.Min[1], -c[2])
		rail.ApplyRotation(up, math.Atan2(dz, dx))
		rail.ApplyTranslation((bd[0].X+bd[1].X)/2, 0, (bd[0].Y+bd[1].Y)/2)
		b.add("railing", rail)
	}
}
