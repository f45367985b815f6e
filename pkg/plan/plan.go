// Package plan defines the floor-plan data model produced by the upstream
// structural detector: classified 2D line segments, scalar build metadata,
// and the optional AI-suggested furniture list.
package plan

import (
	"math"
	"strings"
)

// Class identifies what a detected segment represents.
type Class int

const (
	ClassWall Class = iota
	ClassDoor
	ClassWindow
)

func (c Class) String() string {
	switch c {
	case ClassDoor:
		return "door"
	case ClassWindow:
		return "window"
	default:
		return "wall"
	}
}

// ParseClass maps a detector class name to a Class. Anything that is not a
// door or window builds wall geometry.
func ParseClass(name string) Class {
	switch strings.ToLower(name) {
	case "door":
		return ClassDoor
	case "window":
		return ClassWindow
	default:
		return ClassWall
	}
}

// Point is a 2D point in plan coordinates (image space, arbitrary units).
type Point struct {
	X, Y float64
}

// Element is one classified 2D segment. Elements are treated as immutable;
// normalization produces a new slice rather than rewriting in place.
type Element struct {
	Class  Class
	P1, P2 Point
}

// Metadata defaults, applied once before any builder runs.
const (
	DefaultFloorThickness = 5.0
	DefaultWallHeight     = 300.0
	DefaultWallThickness  = 15.0
	DefaultDoorHeight     = 80.0
	DefaultWindowHeight   = 40.0
)

// FloorPlan is the full input of one reconstruction job.
type FloorPlan struct {
	Elements []Element

	WallHeight       float64
	WallThickness    float64
	DoorHeight       float64
	WindowHeight     float64
	WindowSillHeight float64
	FloorThickness   float64
}

// ApplyDefaults fills every zero metadata field with its documented
// default, for plans constructed in code where zero means unset. Decoded
// payloads go through Decode, which tells an absent field apart from an
// explicit zero. The sill default centers the window vertically in the
// wall, so it is derived after wall and window heights are settled.
func (p *FloorPlan) ApplyDefaults() {
	if p.WallHeight == 0 {
		p.WallHeight = DefaultWallHeight
	}
	if p.WallThickness == 0 {
		p.WallThickness = DefaultWallThickness
	}
	if p.DoorHeight == 0 {
		p.DoorHeight = DefaultDoorHeight
	}
	if p.WindowHeight == 0 {
		p.WindowHeight = DefaultWindowHeight
	}
	if p.WindowSillHeight == 0 {
		p.WindowSillHeight = (p.WallHeight - p.WindowHeight) / 2
	}
	if p.FloorThickness == 0 {
		p.FloorThickness = DefaultFloorThickness
	}
}

// MinFurnitureExtent is the smallest usable furniture width/depth.
const MinFurnitureExtent = 1e-3

// Furniture is one AI-suggested furniture placement. X and Y are relative
// floor coordinates in [0,1]; Width and Depth are plan units.
type Furniture struct {
	Name       string
	X, Y       float64
	Width      float64
	Depth      float64
	Rotation   float64 // degrees about the vertical axis
	Room       string
	Confidence float64
}

// Normalized returns a copy with the name lowercased, X/Y clamped to
// [0,1], extents floored at MinFurnitureExtent, and the rotation reduced
// to [0,360).
func (f Furniture) Normalized() Furniture {
	f.Name = strings.ToLower(f.Name)
	f.X = clamp01(f.X)
	f.Y = clamp01(f.Y)
	if f.Width < MinFurnitureExtent {
		f.Width = MinFurnitureExtent
	}
	if f.Depth < MinFurnitureExtent {
		f.Depth = MinFurnitureExtent
	}
	f.Rotation = math.Mod(f.Rotation, 360)
	if f.Rotation < 0 {
		f.Rotation += 360
	}
	return f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
