package build

import (
	"math"

	"floorwright/pkg/mesh"
	"floorwright/pkg/plan"
)

var up = [3]float64{0, 1, 0}

func (b *builder) buildElement(e plan.Element) {
	switch e.Class {
	case plan.ClassDoor:
		b.buildDoor(e)
	case plan.ClassWindow:
		b.buildWindow(e)
	default:
		b.buildWall(e)
	}
}

// wallSurface builds one vertical wall surface spanning the segment,
// covering [bottom, bottom+height]. The asset panel, when present, is
// stretched to the span at unit depth; the fallback is a box at full wall
// thickness. A flipped copy faces the opposite way so single-sided panel
// assets stay visible from both sides.
func (b *builder) wallSurface(p1, p2 plan.Point, height, bottom float64, flip bool) *mesh.Mesh {
	length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)

	var w *mesh.Mesh
	if panel, ok := b.cache.Instance("wall"); ok {
		size := guardedSize(panel.Bounds())
		panel.ApplyScale(length/size[0], height/size[1], 1.0/size[2])
		w = panel
	} else {
		w = mesh.NewBox(length, height, b.plan.WallThickness)
		w.SetColor(192, 192, 192, 255)
	}

	if flip {
		w.ApplyRotation(up, math.Pi)
	}

	// Rotate the local X axis onto the segment direction. Antiparallel
	// segments produce a zero cross product and skip the rotation; the
	// paired flipped surface keeps such walls visible regardless.
	dir := [3]float64{(p2.X - p1.X) / length, 0, (p2.Y - p1.Y) / length}
	axis := [3]float64{0, -dir[2], dir[1]} // cross((1,0,0), dir)
	angle := math.Acos(clamp(dir[0], -1, 1))
	if vecNorm(axis) > 1e-6 && math.Abs(angle) > 1e-3 {
		w.ApplyRotation(axis, angle)
	}

	c := w.Bounds().Center()
	w.ApplyTranslation(-c[0], -c[1], -c[2])
	w.ApplyTranslation((p1.X+p2.X)/2, bottom+height/2, (p1.Y+p2.Y)/2)
	return w
}

func (b *builder) buildWall(e plan.Element) {
	length := math.Hypot(e.P2.X-e.P1.X, e.P2.Y-e.P1.Y)
	if length < 1e-6 {
		return
	}
	b.add("wall", b.wallSurface(e.P1, e.P2, b.plan.WallHeight, 0, false))
	b.add("wall", b.wallSurface(e.P1, e.P2, b.plan.WallHeight, 0, true))
	b.claim(e.P1, e.P2)
}

func (b *builder) buildDoor(e plan.Element) {
	dx := math.Abs(e.P2.X - e.P1.X)
	dz := math.Abs(e.P2.Y - e.P1.Y)
	cx := (e.P1.X + e.P2.X) / 2
	cz := (e.P1.Y + e.P2.Y) / 2

	isVertical := dx < dz
	targetW := dx
	if isVertical {
		targetW = dz
	}
	targetH := b.plan.DoorHeight + doorClearance
	targetD := b.plan.WallThickness

	if door, ok := b.cache.Instance("door"); ok {
		size := guardedSize(door.Bounds())
		door.ApplyScale(targetW/size[0], targetH/size[1], targetD/size[2])
		if isVertical {
			door.ApplyRotation(up, math.Pi/2)
		}
		bb := door.Bounds()
		c := bb.Center()
		door.ApplyTranslation(cx-c[0], -bb.Min[1], cz-c[2])
		b.add("door", door)
	} else {
		door := mesh.NewBox(targetW, targetH, targetD)
		door.SetColor(139, 69, 19, 255)
		if isVertical {
			door.ApplyRotation(up, math.Pi/2)
		}
		door.ApplyTranslation(cx, targetH/2, cz)
		b.add("door", door)
	}

	// Wall slab filling the gap between the opening and the ceiling.
	slabH := b.plan.WallHeight - targetH
	length := math.Hypot(e.P2.X-e.P1.X, e.P2.Y-e.P1.Y)
	if slabH > 1e-3 && length >= 1e-6 {
		b.add("wall", b.wallSurface(e.P1, e.P2, slabH, targetH, false))
		b.add("wall", b.wallSurface(e.P1, e.P2, slabH, targetH, true))
	}

	b.claim(e.P1, e.P2)
}

func (b *builder) buildWindow(e plan.Element) {
	length := math.Hypot(e.P2.X-e.P1.X, e.P2.Y-e.P1.Y)
	if length < 1e-6 {
		return
	}

	dx := math.Abs(e.P2.X - e.P1.X)
	dz := math.Abs(e.P2.Y - e.P1.Y)
	cx := (e.P1.X + e.P2.X) / 2
	cz := (e.P1.Y + e.P2.Y) / 2
	sill := b.plan.WindowSillHeight
	winH := b.plan.WindowHeight

	// Header above the window.
	if headerH := b.plan.WallHeight - (sill + winH); headerH > 1e-3 {
		b.add("wall", b.wallSurface(e.P1, e.P2, headerH, sill+winH, false))
		b.add("wall", b.wallSurface(e.P1, e.P2, headerH, sill+winH, true))
	}
	// Sill below it.
	if sill > 1e-3 {
		b.add("wall", b.wallSurface(e.P1, e.P2, sill, 0, false))
		b.add("wall", b.wallSurface(e.P1, e.P2, sill, 0, true))
	}

	if win, ok := b.cache.Instance("window"); ok {
		size := guardedSize(win.Bounds())
		win.ApplyScale(math.Max(dx, dz)/size[0], winH/size[1], b.plan.WallThickness/size[2])
		if dx < dz {
			win.ApplyRotation(up, math.Pi/2)
		}
		win.ApplyTranslation(cx, sill+winH/2, cz)
		b.add("window", win)
	} else {
		winW := dx
		if dx < dz {
			winW = dz
		}
		var win *mesh.Mesh
		if dx >= dz {
			win = mesh.NewBox(winW, winH, b.plan.WallThickness*0.5)
		} else {
			win = mesh.NewBox(b.plan.WallThickness*0.5, winH, winW)
		}
		win.SetColor(173, 216, 230, 128)
		win.ApplyTranslation(cx, sill+winH/2, cz)
		b.add("window", win)
	}

	b.claim(e.P1, e.P2)
}

func vecNorm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
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
