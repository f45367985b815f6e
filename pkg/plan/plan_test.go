package plan

import "testing"

func TestParseClass(t *testing.T) {
	tests := []struct {
		name string
		want Class
	}{
		{"wall", ClassWall},
		{"door", ClassDoor},
		{"Door", ClassDoor},
		{"WINDOW", ClassWindow},
		{"column", ClassWall},
		{"", ClassWall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseClass(tt.name); got != tt.want {
				t.Errorf("ParseClass(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("all zero", func(t *testing.T) {
		p := &FloorPlan{}
		p.ApplyDefaults()
		if p.WallHeight != 300 || p.WallThickness != 15 || p.DoorHeight != 80 ||
			p.WindowHeight != 40 || p.FloorThickness != 5 {
			t.Errorf("defaults = %+v", *p)
		}
		// Sill centers the window in the default wall: (300-40)/2.
		if p.WindowSillHeight != 130 {
			t.Errorf("WindowSillHeight = %v, want 130", p.WindowSillHeight)
		}
	})

	t.Run("sill follows custom heights", func(t *testing.T) {
		p := &FloorPlan{WallHeight: 260, WindowHeight: 60}
		p.ApplyDefaults()
		if p.WindowSillHeight != 100 {
			t.Errorf("WindowSillHeight = %v, want 100", p.WindowSillHeight)
		}
	})

	t.Run("explicit values kept", func(t *testing.T) {
		p := &FloorPlan{WallHeight: 250, WindowSillHeight: 20}
		p.ApplyDefaults()
		if p.WallHeight != 250 {
			t.Errorf("WallHeight = %v, want 250", p.WallHeight)
		}
		if p.WindowSillHeight != 20 {
			t.Errorf("WindowSillHeight = %v, want 20", p.WindowSillHeight)
		}
	})
}

func TestFurnitureNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Furniture
		want Furniture
	}{
		{
			"lowercases and clamps",
			Furniture{Name: "Bed", X: -0.2, Y: 1.7, Width: 80, Depth: 120},
			Furniture{Name: "bed", X: 0, Y: 1, Width: 80, Depth: 120},
		},
		{
			"floors degenerate extents",
			Furniture{Name: "sofa", X: 0.5, Y: 0.5, Width: 0, Depth: -4},
			Furniture{Name: "sofa", X: 0.5, Y: 0.5, Width: MinFurnitureExtent, Depth: MinFurnitureExtent},
		},
		{
			"wraps rotation",
			Furniture{Name: "chair", X: 0.1, Y: 0.1, Width: 50, Depth: 50, Rotation: 450},
			Furniture{Name: "chair", X: 0.1, Y: 0.1, Width: 50, Depth: 50, Rotation: 90},
		},
		{
			"negative rotation wraps positive",
			Furniture{Name: "chair", X: 0.1, Y: 0.1, Width: 50, Depth: 50, Rotation: -90},
			Furniture{Name: "chair", X: 0.1, Y: 0.1, Width: 50, Depth: 50, Rotation: 270},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
