// Command genassets writes the procedural furniture asset library as GLB
// files, one per category, into the asset store.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"floorwright/pkg/assets/gen"
	"floorwright/pkg/scene"
)

func main() {
	out := flag.String("out", "assets/furniture", "output directory for furniture GLB files")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("mkdir %s: %v", *out, err)
	}

	for _, entry := range gen.Catalog() {
		m := entry.Build()
		s := scene.New()
		s.Add(entry.Name, m)

		path := filepath.Join(*out, entry.Name+".glb")
		if err := s.ExportGLB(path); err != nil {
			log.Printf("  FAILED %s: %v", entry.Name, err)
			continue
		}
		log.Printf("  wrote %s (%d triangles)", path, m.TriangleCount())
	}
}
