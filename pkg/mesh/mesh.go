// Package mesh provides the triangle mesh type used throughout the
// reconstruction pipeline. All arrays are flat: vertices and normals hold
// 3 floats per vertex, colors hold 4 bytes (RGBA) per vertex, indices hold
// 3 uint32s per triangle.
package mesh

// Mesh is a triangle mesh with optional per-vertex colors.
type Mesh struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 // [nx0,ny0,nz0, ...]
	Colors   []uint8   // [r0,g0,b0,a0, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Copy returns a deep copy with independent storage. Transforming the copy
// never affects the original.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]float32, len(m.Vertices)),
		Normals:  make([]float32, len(m.Normals)),
		Colors:   make([]uint8, len(m.Colors)),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Normals, m.Normals)
	copy(c.Colors, m.Colors)
	copy(c.Indices, m.Indices)
	return c
}

// SetColor assigns one RGBA color to every vertex.
func (m *Mesh) SetColor(r, g, b, a uint8) {
	n := m.VertexCount()
	m.Colors = make([]uint8, 0, n*4)
	for i := 0; i < n; i++ {
		m.Colors = append(m.Colors, r, g, b, a)
	}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max [3]float64
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float64 {
	return [3]float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the box center.
func (b Bounds) Center() [3]float64 {
	return [3]float64{(b.Min[0] + b.Max[0]) / 2, (b.Min[1] + b.Max[1]) / 2, (b.Min[2] + b.Max[2]) / 2}
}

// Bounds returns the axis-aligned bounding box of the mesh. An empty mesh
// has a zero box.
func (m *Mesh) Bounds() Bounds {
	if m.IsEmpty() {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float64{float64(m.Vertices[0]), float64(m.Vertices[1]), float64(m.Vertices[2])},
		Max: [3]float64{float64(m.Vertices[0]), float64(m.Vertices[1]), float64(m.Vertices[2])},
	}
	for i := 3; i < len(m.Vertices); i += 3 {
		for ax := 0; ax < 3; ax++ {
			v := float64(m.Vertices[i+ax])
			if v < b.Min[ax] {
				b.Min[ax] = v
			}
			if v > b.Max[ax] {
				b.Max[ax] = v
			}
		}
	}
	return b
}

// Concatenate merges the given meshes into one new mesh, offsetting indices.
// Inputs are not modified. Meshes without colors are padded with opaque
// white so color data stays aligned when any input carries colors.
func Concatenate(parts ...*Mesh) *Mesh {
	out := &Mesh{}
	hasColors := false
	for _, p := range parts {
		if len(p.Colors) > 0 {
			hasColors = true
			break
		}
	}
	for _, p := range parts {
		base := uint32(out.VertexCount())
		out.Vertices = append(out.Vertices, p.Vertices...)
		out.Normals = append(out.Normals, p.Normals...)
		if hasColors {
			if len(p.Colors) == p.VertexCount()*4 {
				out.Colors = append(out.Colors, p.Colors...)
			} else {
				for i := 0; i < p.VertexCount(); i++ {
					out.Colors = append(out.Colors, 255, 255, 255, 255)
				}
			}
		}
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}
