package build

import (
	"strings"

	"floorwright/pkg/mesh"
)

// proceduralFurniture synthesizes a primitive-shape stand-in when no
// authored asset exists for the item. The category is inferred by
// substring match, first rule wins; unmatched names get a single box.
// Every returned mesh has its base at y=0 and is centered on the origin
// in x/z.
func proceduralFurniture(name string, w, h, d float64, color rgba) *mesh.Mesh {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "bed"):
		return proceduralBed(w, h, d)
	case strings.Contains(name, "table"):
		return proceduralTable(w, h, d, color)
	case strings.Contains(name, "sofa"):
		return proceduralSofa(w, h, d, color)
	case strings.Contains(name, "chair"):
		return proceduralChair(w, h, d, color)
	case strings.Contains(name, "toilet"):
		return proceduralToilet(w, h, d)
	default:
		return coloredBox(w, h, d, color, 0, h/2, 0)
	}
}

func coloredBox(w, h, d float64, color rgba, tx, ty, tz float64) *mesh.Mesh {
	m := mesh.NewBox(w, h, d)
	m.SetColor(color[0], color[1], color[2], color[3])
	m.ApplyTranslation(tx, ty, tz)
	return m
}

// proceduralBed stacks a wooden base, a mattress and a pillow.
func proceduralBed(w, h, d float64) *mesh.Mesh {
	baseH := h * 0.3
	mattressH := h * 0.5
	return mesh.Concatenate(
		coloredBox(w, baseH, d, rgba{139, 69, 19, 255}, 0, baseH/2, 0),
		coloredBox(w*0.95, mattressH, d*0.95, rgba{240, 240, 240, 255}, 0, baseH+mattressH/2, 0),
		coloredBox(w*0.8, h*0.2, d*0.2, rgba{255, 255, 255, 255}, 0, baseH+mattressH+h*0.1, -d*0.35),
	)
}

// proceduralTable is a top on four corner legs.
func proceduralTable(w, h, d float64, color rgba) *mesh.Mesh {
	topH := h * 0.1
	legH := h - topH
	legW := min(w, d) * 0.1

	parts := []*mesh.Mesh{coloredBox(w, topH, d, color, 0, legH+topH/2, 0)}
	for _, sx := range []float64{-1, 1} {
		for _, sz := range []float64{-1, 1} {
			parts = append(parts, coloredBox(legW, legH, legW, color, sx*(w/2-legW), legH/2, sz*(d/2-legW)))
		}
	}
	return mesh.Concatenate(parts...)
}

// proceduralSofa is a seat with a backrest and two arms.
func proceduralSofa(w, h, d float64, color rgba) *mesh.Mesh {
	seatH := h * 0.4
	backD := d * 0.2
	armW := w * 0.15

	parts := []*mesh.Mesh{
		coloredBox(w, seatH, d, color, 0, seatH/2, 0),
		coloredBox(w, h-seatH, backD, color, 0, seatH+(h-seatH)/2, -d/2+backD/2),
	}
	for _, sx := range []float64{-1, 1} {
		parts = append(parts, coloredBox(armW, h*0.6, d, color, sx*(w/2-armW/2), h*0.3, 0))
	}
	return mesh.Concatenate(parts...)
}

// proceduralChair is a thin seat, a backrest and four legs.
func proceduralChair(w, h, d float64, color rgba) *mesh.Mesh {
	seatH := h * 0.5
	seatD := d * 0.9
	backD := d * 0.1
	legW := w * 0.1

	parts := []*mesh.Mesh{
		coloredBox(w, h*0.05, seatD, color, 0, seatH, 0),
		coloredBox(w, h-seatH, backD, color, 0, seatH+(h-seatH)/2, -d/2+backD/2),
	}
	for _, sx := range []float64{-1, 1} {
		for _, sz := range []float64{-1, 1} {
			parts = append(parts, coloredBox(legW, seatH, legW, color, sx*(w/2-legW), seatH/2, sz*(seatD/2-legW)))
		}
	}
	return mesh.Concatenate(parts...)
}

// proceduralToilet is a base with a tank at its back.
func proceduralToilet(w, h, d float64) *mesh.Mesh {
	baseH := h * 0.5
	tankD := d * 0.3
	white := rgba{255, 255, 255, 255}
	return mesh.Concatenate(
		coloredBox(w*0.7, baseH, d*0.7, white, 0, baseH/2, d*0.15),
		coloredBox(w, h-baseH, tankD, white, 0, baseH+(h-baseH)/2, -d/2+tankD/2),
	)
}
