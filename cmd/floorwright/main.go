// Command floorwright reconstructs a 3D building model from a floor-plan
// detection JSON file and writes it as a binary glTF (GLB) scene.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"floorwright/pkg/assets"
	"floorwright/pkg/build"
	"floorwright/pkg/plan"
)

func main() {
	input := flag.String("input", "detection.json", "detection payload JSON file")
	output := flag.String("output", "output.glb", "output GLB file")
	assetsDir := flag.String("assets", "assets", "asset store directory")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	p, furniture, err := plan.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	counts := map[plan.Class]int{}
	for _, e := range p.Elements {
		counts[e.Class]++
	}
	log.Printf("Analyzing floor plan: %d walls, %d doors, %d windows, %d furniture items",
		counts[plan.ClassWall], counts[plan.ClassDoor], counts[plan.ClassWindow], len(furniture))
	log.Printf("Configuration: wallHeight=%.0f doorHeight=%.0f windowHeight=%.0f sill=%.0f",
		p.WallHeight, p.DoorHeight, p.WindowHeight, p.WindowSillHeight)

	cache := assets.NewCache(*assetsDir)
	if err := cache.Preload(context.Background(), "wall", "door", "window", "railing"); err != nil {
		log.Fatalf("preload assets: %v", err)
	}

	sc, err := build.Reconstruct(p, furniture, cache)
	if err != nil {
		log.Fatalf("reconstruct: %v", err)
	}
	if err := sc.ExportGLB(*output); err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("Exported %d nodes to %s", sc.Len(), *output)
}
