// Package gen builds the authored furniture asset library procedurally.
// Rectangular parts are plain boxes; round parts (legs, knobs, handles,
// basins) are SDF cylinders tessellated with marching cubes via the
// github.com/deadsy/sdfx CAD library.
package gen

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"floorwright/pkg/mesh"
)

// meshCells controls marching cubes tessellation resolution for cylinders.
const meshCells = 32

// Entry is one buildable asset in the library.
type Entry struct {
	Name  string
	Build func() *mesh.Mesh
}

// Catalog returns the asset library in a fixed generation order.
func Catalog() []Entry {
	return []Entry{
		{"bed", Bed},
		{"nightstand", Nightstand},
		{"wardrobe", Wardrobe},
		{"sofa", Sofa},
		{"armchair", Armchair},
		{"coffee_table", CoffeeTable},
		{"dining_table", DiningTable},
		{"dining_chair", DiningChair},
		{"refrigerator", Refrigerator},
		{"stove", Stove},
		{"toilet", Toilet},
		{"sink", Sink},
		{"bathtub", Bathtub},
	}
}

// box returns a colored box translated so its center sits at (tx, ty, tz).
func box(x, y, z float64, r, g, b, a uint8, tx, ty, tz float64) *mesh.Mesh {
	m := mesh.NewBox(x, y, z)
	m.SetColor(r, g, b, a)
	m.ApplyTranslation(tx, ty, tz)
	return m
}

// cylinder returns a colored vertical (Y-axis) cylinder translated so its
// center sits at (tx, ty, tz).
func cylinder(radius, height float64, r, g, b, a uint8, tx, ty, tz float64) *mesh.Mesh {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("gen: sdf.Cylinder3D: %v", err))
	}
	m := toMesh(s)
	m.SetColor(r, g, b, a)
	// sdfx cylinders are Z-aligned; stand them up.
	m.ApplyRotation([3]float64{1, 0, 0}, math.Pi/2)
	m.ApplyTranslation(tx, ty, tz)
	return m
}

// toMesh tessellates an SDF solid into a triangle mesh with face normals.
func toMesh(s sdf.SDF3) *mesh.Mesh {
	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(s, renderer)

	m := &mesh.Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for i, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}

// Bed builds a bed with frame, mattress, headboard and two pillows.
func Bed() *mesh.Mesh {
	return mesh.Concatenate(
		box(200, 40, 180, 101, 67, 33, 255, 0, 20, 0),
		box(190, 30, 170, 240, 240, 240, 255, 0, 55, 0),
		box(200, 100, 10, 101, 67, 33, 255, 0, 90, -90),
		box(40, 15, 30, 255, 255, 255, 255, -50, 77, -60),
		box(40, 15, 30, 255, 255, 255, 255, 50, 77, -60),
	)
}

// Nightstand builds a bedside unit with a drawer front and a metal knob.
func Nightstand() *mesh.Mesh {
	knob := cylinder(2, 3, 192, 192, 192, 255, 0, 0, 0)
	knob.ApplyRotation([3]float64{1, 0, 0}, math.Pi/2)
	knob.ApplyTranslation(0, 35, 25)
	return mesh.Concatenate(
		box(50, 60, 40, 139, 90, 43, 255, 0, 30, 0),
		box(45, 15, 5, 101, 67, 33, 255, 0, 35, 22),
		knob,
	)
}

// Wardrobe builds a two-door wardrobe with handles.
func Wardrobe() *mesh.Mesh {
	return mesh.Concatenate(
		box(150, 200, 60, 101, 67, 33, 255, 0, 100, 0),
		box(73, 195, 5, 139, 90, 43, 255, -37, 100, 32),
		box(73, 195, 5, 139, 90, 43, 255, 37, 100, 32),
		cylinder(2, 20, 192, 192, 192, 255, -20, 100, 35),
		cylinder(2, 20, 192, 192, 192, 255, 20, 100, 35),
	)
}

// Sofa builds a three-seater with backrest, armrests and cushions.
func Sofa() *mesh.Mesh {
	parts := []*mesh.Mesh{
		box(180, 50, 80, 70, 70, 90, 255, 0, 25, 0),
		box(180, 80, 20, 70, 70, 90, 255, 0, 65, -40),
		box(20, 60, 80, 70, 70, 90, 255, -90, 30, 0),
		box(20, 60, 80, 70, 70, 90, 255, 90, 30, 0),
	}
	for i := 0; i < 3; i++ {
		parts = append(parts, box(55, 15, 60, 90, 90, 110, 255, float64(-60+i*60), 57, 0))
	}
	return mesh.Concatenate(parts...)
}

// Armchair builds a single-seat armchair.
func Armchair() *mesh.Mesh {
	return mesh.Concatenate(
		box(80, 50, 80, 139, 69, 19, 255, 0, 25, 0),
		box(80, 80, 20, 139, 69, 19, 255, 0, 65, -40),
		box(20, 60, 80, 139, 69, 19, 255, -40, 30, 0),
		box(20, 60, 80, 139, 69, 19, 255, 40, 30, 0),
	)
}

// CoffeeTable builds a low table on four cylindrical legs.
func CoffeeTable() *mesh.Mesh {
	parts := []*mesh.Mesh{box(120, 10, 60, 160, 82, 45, 255, 0, 45, 0)}
	for _, p := range [][2]float64{{-55, -25}, {55, -25}, {-55, 25}, {55, 25}} {
		parts = append(parts, cylinder(3, 40, 101, 67, 33, 255, p[0], 22, p[1]))
	}
	return mesh.Concatenate(parts...)
}

// DiningTable builds a dining table on four cylindrical legs.
func DiningTable() *mesh.Mesh {
	parts := []*mesh.Mesh{box(180, 10, 100, 160, 82, 45, 255, 0, 75, 0)}
	for _, p := range [][2]float64{{-85, -45}, {85, -45}, {-85, 45}, {85, 45}} {
		parts = append(parts, cylinder(5, 70, 101, 67, 33, 255, p[0], 37, p[1]))
	}
	return mesh.Concatenate(parts...)
}

// DiningChair builds a chair with backrest and four cylindrical legs.
func DiningChair() *mesh.Mesh {
	parts := []*mesh.Mesh{
		box(45, 8, 45, 139, 90, 43, 255, 0, 45, 0),
		box(45, 50, 8, 139, 90, 43, 255, 0, 70, -20),
	}
	for _, p := range [][2]float64{{-18, -18}, {18, -18}, {-18, 18}, {18, 18}} {
		parts = append(parts, cylinder(2, 40, 101, 67, 33, 255, p[0], 22, p[1]))
	}
	return mesh.Concatenate(parts...)
}

// Refrigerator builds a fridge-freezer with door fronts and handles.
func Refrigerator() *mesh.Mesh {
	return mesh.Concatenate(
		box(80, 180, 70, 220, 220, 220, 255, 0, 90, 0),
		box(78, 60, 5, 200, 200, 200, 255, 0, 145, 37),
		box(78, 115, 5, 200, 200, 200, 255, 0, 60, 37),
		cylinder(1.5, 30, 128, 128, 128, 255, 35, 145, 40),
		cylinder(1.5, 50, 128, 128, 128, 255, 35, 60, 40),
	)
}

// Stove builds a range with an oven door front and four burners.
func Stove() *mesh.Mesh {
	parts := []*mesh.Mesh{
		box(80, 90, 70, 220, 220, 220, 255, 0, 45, 0),
		box(70, 50, 5, 50, 50, 50, 255, 0, 35, 37),
	}
	for _, p := range [][2]float64{{-20, -15}, {20, -15}, {-20, 15}, {20, 15}} {
		parts = append(parts, cylinder(8, 2, 30, 30, 30, 255, p[0], 91, p[1]))
	}
	return mesh.Concatenate(parts...)
}

// Toilet builds a toilet with a cylindrical bowl and a box tank.
func Toilet() *mesh.Mesh {
	return mesh.Concatenate(
		cylinder(20, 40, 255, 255, 255, 255, 0, 20, 10),
		cylinder(18, 5, 255, 255, 255, 255, 0, 42, 10),
		box(35, 50, 20, 255, 255, 255, 255, 0, 45, -15),
	)
}

// Sink builds a pedestal sink with a faucet.
func Sink() *mesh.Mesh {
	return mesh.Concatenate(
		cylinder(25, 15, 255, 255, 255, 255, 0, 85, 0),
		cylinder(15, 80, 255, 255, 255, 255, 0, 40, 0),
		cylinder(2, 20, 192, 192, 192, 255, 0, 100, -15),
	)
}

// Bathtub builds a tub with a rim.
func Bathtub() *mesh.Mesh {
	return mesh.Concatenate(
		box(150, 60, 70, 255, 255, 255, 255, 0, 30, 0),
		box(155, 5, 75, 245, 245, 245, 255, 0, 62, 0),
	)
}
