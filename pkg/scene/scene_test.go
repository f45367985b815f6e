package scene

import (
	"os"
	"path/filepath"
	"testing"

	"floorwright/pkg/mesh"
)

func TestSceneAddPreservesOrder(t *testing.T) {
	s := New()
	s.Add("floor_000", mesh.NewBox(1, 1, 1))
	s.Add("wall_001", mesh.NewBox(2, 2, 2))
	s.Add("door_002", mesh.NewBox(3, 3, 3))

	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	want := []string{"floor_000", "wall_001", "door_002"}
	for i, n := range s.Nodes() {
		if n.Name != want[i] {
			t.Errorf("Nodes()[%d].Name = %q, want %q", i, n.Name, want[i])
		}
	}
}

func TestExportLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.glb")

	box := mesh.NewBox(10, 20, 30)
	box.SetColor(100, 150, 200, 255)
	s := New()
	s.Add("box", box)

	if err := s.ExportGLB(path); err != nil {
		t.Fatalf("ExportGLB() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind after export")
	}

	got, err := LoadMeshGLB(path)
	if err != nil {
		t.Fatalf("LoadMeshGLB() error = %v", err)
	}
	if got.VertexCount() != box.VertexCount() {
		t.Errorf("VertexCount() = %d, want %d", got.VertexCount(), box.VertexCount())
	}
	if got.TriangleCount() != box.TriangleCount() {
		t.Errorf("TriangleCount() = %d, want %d", got.TriangleCount(), box.TriangleCount())
	}
	if len(got.Normals) != len(box.Normals) {
		t.Errorf("len(Normals) = %d, want %d", len(got.Normals), len(box.Normals))
	}
	if len(got.Colors) != len(box.Colors) {
		t.Errorf("len(Colors) = %d, want %d", len(got.Colors), len(box.Colors))
	}

	b := got.Bounds()
	if b.Size() != [3]float64{10, 20, 30} {
		t.Errorf("loaded bounds size = %v, want {10 20 30}", b.Size())
	}
}

func TestExportMultipleNodesMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "two.glb")

	s := New()
	s.Add("a", mesh.NewBox(1, 1, 1))
	s.Add("b", mesh.NewBox(2, 2, 2))
	if err := s.ExportGLB(path); err != nil {
		t.Fatalf("ExportGLB() error = %v", err)
	}

	got, err := LoadMeshGLB(path)
	if err != nil {
		t.Fatalf("LoadMeshGLB() error = %v", err)
	}
	// Loading merges every primitive in the container.
	if got.VertexCount() != 48 {
		t.Errorf("merged VertexCount() = %d, want 48", got.VertexCount())
	}
}

func TestExportToMissingDirectory(t *testing.T) {
	s := New()
	s.Add("box", mesh.NewBox(1, 1, 1))
	err := s.ExportGLB(filepath.Join(t.TempDir(), "no", "such", "dir", "x.glb"))
	if err == nil {
		t.Fatal("ExportGLB() error = nil for unwritable path, want error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadMeshGLB(filepath.Join(t.TempDir(), "absent.glb")); err == nil {
		t.Fatal("LoadMeshGLB() error = nil for missing file, want error")
	}
}
