package build

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type rgba [4]uint8

func mustHex(hex string) rgba {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("build: bad palette hex " + hex)
	}
	r, g, b := c.RGB255()
	return rgba{r, g, b, 255}
}

// Display palette for furniture, matched by exact name first and then by
// substring in rule order. The order is part of the contract: a
// "chair_table" name resolves to the table color because table precedes
// chair only where listed below.
var furnitureColors = []struct {
	key   string
	color rgba
}{
	{"bed", mustHex("#4169E1")},    // royal blue
	{"sofa", mustHex("#8B4513")},   // saddle brown
	{"table", mustHex("#DEB887")},  // burlywood
	{"chair", mustHex("#A0522D")},  // sienna
	{"toilet", mustHex("#FFFFFF")}, // white
	{"sink", mustHex("#F0F8FF")},   // alice blue
}

var defaultFurnitureColor = mustHex("#808080")

func displayColor(name string) rgba {
	for _, r := range furnitureColors {
		if name == r.key {
			return r.color
		}
	}
	for _, r := range furnitureColors {
		if strings.Contains(name, r.key) {
			return r.color
		}
	}
	return defaultFurnitureColor
}

// Per-category item heights, substring-matched in order.
var furnitureHeights = []struct {
	key    string
	height float64
}{
	{"bed", 60},
	{"sofa", 80},
	{"table", 75},
	{"chair", 90},
	{"toilet", 80},
	{"sink", 85},
}

const defaultFurnitureHeight = 60.0

func categoryHeight(name string) float64 {
	for _, r := range furnitureHeights {
		if strings.Contains(name, r.key) {
			return r.height
		}
	}
	return defaultFurnitureHeight
}
