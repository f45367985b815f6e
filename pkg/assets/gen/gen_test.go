package gen

import "testing"

func TestCatalog(t *testing.T) {
	entries := Catalog()
	if len(entries) == 0 {
		t.Fatal("Catalog() is empty")
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.Name] {
			t.Errorf("duplicate catalog entry %q", e.Name)
		}
		seen[e.Name] = true
	}
	for _, name := range []string{"bed", "sofa", "dining_table", "dining_chair", "toilet", "sink"} {
		if !seen[name] {
			t.Errorf("catalog missing %q", name)
		}
	}

	// Every asset-store alias target must be buildable, or the alias could
	// never resolve against a generated library.
	for _, target := range []string{"dining_chair", "dining_table", "refrigerator", "stove"} {
		if !seen[target] {
			t.Errorf("catalog missing alias target %q", target)
		}
	}
}

func TestBuildersProduceGeometry(t *testing.T) {
	for _, e := range Catalog() {
		t.Run(e.Name, func(t *testing.T) {
			m := e.Build()
			if m.IsEmpty() {
				t.Fatal("built mesh is empty")
			}
			if m.TriangleCount() == 0 {
				t.Error("built mesh has no triangles")
			}
			if got, want := len(m.Colors), m.VertexCount()*4; got != want {
				t.Errorf("len(Colors) = %d, want %d", got, want)
			}
			b := m.Bounds()
			size := b.Size()
			if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
				t.Errorf("degenerate bounds %v", size)
			}
		})
	}
}
