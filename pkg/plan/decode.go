package plan

import (
	"encoding/json"
	"fmt"
	"io"
)

// detectionPayload mirrors the JSON the detector service emits: parallel
// points/classes arrays plus scalar metadata and an optional furniture list.
type detectionPayload struct {
	Points []struct {
		X1 float64 `json:"x1"`
		Y1 float64 `json:"y1"`
		X2 float64 `json:"x2"`
		Y2 float64 `json:"y2"`
	} `json:"points"`
	Classes []struct {
		Name string `json:"name"`
	} `json:"classes"`

	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`

	// Metadata scalars are pointers so an explicit zero (say a
	// floor-level window sill) is distinguishable from an absent field.
	AverageDoor      *float64 `json:"averageDoor"`
	WallHeight       *float64 `json:"wallHeight"`
	WallThickness    *float64 `json:"wallThickness"`
	WindowHeight     *float64 `json:"windowHeight"`
	WindowSillHeight *float64 `json:"windowSillHeight"`
	FloorThickness   *float64 `json:"floorThickness"`

	Furniture []furnitureRecord `json:"furniture"`
}

// furnitureRecord uses pointers where the original payload may omit a
// field that defaults to something other than zero.
type furnitureRecord struct {
	Name       string   `json:"name"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width"`
	Depth      *float64 `json:"depth"`
	Rotation   float64  `json:"rotation"`
	Room       string   `json:"room"`
	Confidence float64  `json:"confidence"`
}

const (
	defaultRelativePos    = 0.5
	defaultFurnitureWidth = 100.0
	defaultFurnitureDepth = 100.0
)

// scalarOr returns the field's value when the payload carried it, even an
// explicit zero, and the default otherwise.
func scalarOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// Decode parses a detection payload into a FloorPlan and a normalized
// furniture list. Absent metadata fields get their documented defaults;
// supplied values are honored as-is, zero included. The furniture list may
// be empty.
func Decode(r io.Reader) (*FloorPlan, []Furniture, error) {
	var raw detectionPayload
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode detection payload: %w", err)
	}
	if len(raw.Points) != len(raw.Classes) {
		return nil, nil, fmt.Errorf("detection payload: %d points but %d classes", len(raw.Points), len(raw.Classes))
	}

	wallHeight := scalarOr(raw.WallHeight, DefaultWallHeight)
	windowHeight := scalarOr(raw.WindowHeight, DefaultWindowHeight)
	p := &FloorPlan{
		Elements:         make([]Element, 0, len(raw.Points)),
		WallHeight:       wallHeight,
		WallThickness:    scalarOr(raw.WallThickness, DefaultWallThickness),
		DoorHeight:       scalarOr(raw.AverageDoor, DefaultDoorHeight),
		WindowHeight:     windowHeight,
		WindowSillHeight: scalarOr(raw.WindowSillHeight, (wallHeight-windowHeight)/2),
		FloorThickness:   scalarOr(raw.FloorThickness, DefaultFloorThickness),
	}
	for i, pt := range raw.Points {
		p.Elements = append(p.Elements, Element{
			Class: ParseClass(raw.Classes[i].Name),
			P1:    Point{X: pt.X1, Y: pt.Y1},
			P2:    Point{X: pt.X2, Y: pt.Y2},
		})
	}

	furniture := make([]Furniture, 0, len(raw.Furniture))
	for _, rec := range raw.Furniture {
		name := rec.Name
		if name == "" {
			name = "unknown"
		}
		f := Furniture{
			Name:       name,
			X:          defaultRelativePos,
			Y:          defaultRelativePos,
			Width:      defaultFurnitureWidth,
			Depth:      defaultFurnitureDepth,
			Rotation:   rec.Rotation,
			Room:       rec.Room,
			Confidence: rec.Confidence,
		}
		if rec.X != nil {
			f.X = *rec.X
		}
		if rec.Y != nil {
			f.Y = *rec.Y
		}
		if rec.Width != nil {
			f.Width = *rec.Width
		}
		if rec.Depth != nil {
			f.Depth = *rec.Depth
		}
		furniture = append(furniture, f.Normalized())
	}
	return p, furniture, nil
}
