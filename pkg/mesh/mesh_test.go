package mesh

import (
	"math"
	"testing"
)

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestNewBox(t *testing.T) {
	m := NewBox(10, 20, 30)
	if got := m.VertexCount(); got != 24 {
		t.Errorf("VertexCount() = %d, want 24", got)
	}
	if got := m.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}

	b := m.Bounds()
	wantMin := [3]float64{-5, -10, -15}
	wantMax := [3]float64{5, 10, 15}
	if b.Min != wantMin || b.Max != wantMax {
		t.Errorf("Bounds() = %v..%v, want %v..%v", b.Min, b.Max, wantMin, wantMax)
	}
	if got := b.Center(); got != [3]float64{0, 0, 0} {
		t.Errorf("Center() = %v, want origin", got)
	}
	if got := b.Size(); got != [3]float64{10, 20, 30} {
		t.Errorf("Size() = %v, want {10 20 30}", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	m := NewBox(2, 2, 2)
	m.SetColor(10, 20, 30, 40)
	c := m.Copy()

	c.ApplyTranslation(100, 0, 0)
	c.Colors[0] = 99
	c.Indices[0] = 7

	if m.Vertices[0] != 1 {
		t.Errorf("original vertex moved to %v after copy translation", m.Vertices[0])
	}
	if m.Colors[0] != 10 {
		t.Errorf("original color changed to %d after copy write", m.Colors[0])
	}
	if m.Indices[0] != 0 {
		t.Errorf("original index changed to %d after copy write", m.Indices[0])
	}
}

func TestSetColor(t *testing.T) {
	m := NewBox(1, 1, 1)
	m.SetColor(1, 2, 3, 4)
	if got, want := len(m.Colors), m.VertexCount()*4; got != want {
		t.Fatalf("len(Colors) = %d, want %d", got, want)
	}
	for i := 0; i < len(m.Colors); i += 4 {
		if m.Colors[i] != 1 || m.Colors[i+1] != 2 || m.Colors[i+2] != 3 || m.Colors[i+3] != 4 {
			t.Fatalf("Colors[%d:%d] = %v, want [1 2 3 4]", i, i+4, m.Colors[i:i+4])
		}
	}
}

func TestApplyTranslation(t *testing.T) {
	m := NewBox(2, 2, 2)
	m.ApplyTranslation(10, -5, 3)
	b := m.Bounds()
	if got := b.Center(); got != [3]float64{10, -5, 3} {
		t.Errorf("Center() after translation = %v, want {10 -5 3}", got)
	}
	// Normals are direction vectors and must not move.
	if m.Normals[0] != 1 || m.Normals[1] != 0 || m.Normals[2] != 0 {
		t.Errorf("first normal after translation = %v, want {1 0 0}", m.Normals[0:3])
	}
}

func TestApplyScale(t *testing.T) {
	m := NewBox(2, 2, 2)
	m.ApplyScale(3, 1, 0.5)
	if got := m.Bounds().Size(); got != [3]float64{6, 2, 1} {
		t.Errorf("Size() after scale = %v, want {6 2 1}", got)
	}
	// Normals stay unit length under non-uniform scale.
	for i := 0; i < len(m.Normals); i += 3 {
		ln := math.Sqrt(float64(m.Normals[i]*m.Normals[i] + m.Normals[i+1]*m.Normals[i+1] + m.Normals[i+2]*m.Normals[i+2]))
		if math.Abs(ln-1) > 1e-5 {
			t.Fatalf("normal %d has length %v after scale, want 1", i/3, ln)
		}
	}
}

func TestApplyRotationQuarterTurn(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{1, 0, 0},
		Normals:  []float32{1, 0, 0},
	}
	m.ApplyRotation([3]float64{0, 1, 0}, math.Pi/2)

	// +X rotated a quarter turn about +Y lands on -Z.
	if math.Abs(float64(m.Vertices[0])) > 1e-6 || math.Abs(float64(m.Vertices[2])+1) > 1e-6 {
		t.Errorf("vertex after rotation = %v, want {0 0 -1}", m.Vertices)
	}
	if math.Abs(float64(m.Normals[0])) > 1e-6 || math.Abs(float64(m.Normals[2])+1) > 1e-6 {
		t.Errorf("normal after rotation = %v, want {0 0 -1}", m.Normals)
	}
}

func TestApplyRotationZeroAxis(t *testing.T) {
	m := &Mesh{Vertices: []float32{1, 2, 3}}
	m.ApplyRotation([3]float64{0, 0, 0}, math.Pi)
	if m.Vertices[0] != 1 || m.Vertices[1] != 2 || m.Vertices[2] != 3 {
		t.Errorf("zero axis rotation moved vertices: %v", m.Vertices)
	}
}

func TestConcatenate(t *testing.T) {
	t.Run("offsets indices", func(t *testing.T) {
		a := NewBox(1, 1, 1)
		b := NewBox(2, 2, 2)
		out := Concatenate(a, b)
		if got, want := out.VertexCount(), 48; got != want {
			t.Errorf("VertexCount() = %d, want %d", got, want)
		}
		if got, want := out.TriangleCount(), 24; got != want {
			t.Errorf("TriangleCount() = %d, want %d", got, want)
		}
		// The second part's first index lands past the first part's vertices.
		if got := out.Indices[36]; got != 24 {
			t.Errorf("Indices[36] = %d, want 24", got)
		}
	})

	t.Run("pads missing colors", func(t *testing.T) {
		a := NewBox(1, 1, 1)
		a.SetColor(200, 0, 0, 255)
		b := NewBox(1, 1, 1) // no colors
		out := Concatenate(a, b)
		if got, want := len(out.Colors), out.VertexCount()*4; got != want {
			t.Fatalf("len(Colors) = %d, want %d", got, want)
		}
		if out.Colors[0] != 200 {
			t.Errorf("first part color = %d, want 200", out.Colors[0])
		}
		// Padding for the colorless part is opaque white.
		pad := out.Colors[24*4 : 24*4+4]
		if pad[0] != 255 || pad[1] != 255 || pad[2] != 255 || pad[3] != 255 {
			t.Errorf("padded color = %v, want [255 255 255 255]", pad)
		}
	})

	t.Run("no colors anywhere", func(t *testing.T) {
		out := Concatenate(NewBox(1, 1, 1), NewBox(1, 1, 1))
		if len(out.Colors) != 0 {
			t.Errorf("len(Colors) = %d, want 0 when no input has colors", len(out.Colors))
		}
	})
}
