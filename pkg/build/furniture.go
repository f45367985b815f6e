package build

import (
	"fmt"
	"math"

	"floorwright/pkg/plan"
	"floorwright/pkg/scene"
)

// placeFurniture maps each item's relative [0,1]² coordinates onto the
// floor footprint, instances its asset (or synthesizes a procedural
// primitive), and appends one uniquely named node per item. The item index
// keeps names unique when the same furniture type repeats.
func (b *builder) placeFurniture(s *scene.Scene, items []plan.Furniture) {
	fp := b.bounds
	for i, raw := range items {
		f := raw.Normalized()

		worldX := fp.minX + f.X*fp.width()
		worldZ := fp.minY + f.Y*fp.depth()
		height := categoryHeight(f.Name)
		color := displayColor(f.Name)

		m, ok := b.cache.Instance(f.Name)
		if ok {
			size := guardedSize(m.Bounds())
			m.ApplyScale(f.Width/size[0], height/size[1], f.Depth/size[2])
			c := m.Bounds().Center()
			m.ApplyTranslation(-c[0], -c[1], -c[2])
			m.ApplyTranslation(0, height/2, 0)
		} else {
			m = proceduralFurniture(f.Name, f.Width, height, f.Depth, color)
		}

		if f.Rotation != 0 {
			m.ApplyRotation(up, f.Rotation*math.Pi/180)
		}
		m.ApplyTranslation(worldX, 0, worldZ)

		s.Add(fmt.Sprintf("furniture_%s_%d", f.Name, i), m)
	}
}
