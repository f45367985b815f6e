// Package assets loads named base meshes from a file-backed store and
// hands out ownership-safe copies. Absence of an asset is a value, not an
// error: callers branch to their documented procedural fallback.
package assets

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"floorwright/pkg/mesh"
	"floorwright/pkg/scene"
)

// aliases maps alternate furniture names onto the asset files that serve
// them, mirroring the authored asset library.
var aliases = map[string]string{
	"chair":  "dining_chair",
	"table":  "dining_table",
	"fridge": "refrigerator",
	"oven":   "stove",
}

// Cache is a per-job, lazily populated asset cache. One Cache must not be
// shared across jobs; jobs running in parallel each own their own.
type Cache struct {
	dir string

	mu     sync.Mutex
	loaded map[string]*mesh.Mesh // nil entry records a known-absent asset
}

// NewCache returns a cache over the given asset directory. Structural
// assets live at <dir>/<name>.glb, furniture at <dir>/furniture/<name>.glb.
func NewCache(dir string) *Cache {
	return &Cache{
		dir:    dir,
		loaded: make(map[string]*mesh.Mesh),
	}
}

// Load returns the cached base mesh for the identifier, loading it on
// first use. The second return is false when the asset is absent or
// unreadable; failures are logged once and memoized. The returned mesh is
// the cached original: callers that intend to transform it must use
// Instance instead.
func (c *Cache) Load(name string) (*mesh.Mesh, bool) {
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	c.mu.Lock()
	if m, ok := c.loaded[name]; ok {
		c.mu.Unlock()
		return m, m != nil
	}
	c.mu.Unlock()

	// Loading happens outside the lock so independent assets can load
	// concurrently; a duplicate concurrent load of the same name is
	// harmless since base meshes are immutable once stored.
	m := c.read(name)

	c.mu.Lock()
	c.loaded[name] = m
	c.mu.Unlock()
	return m, m != nil
}

// Instance returns a deep copy of the asset with independent transform
// state, or false if the asset is absent. Mutating an instance never
// leaks into the cache.
func (c *Cache) Instance(name string) (*mesh.Mesh, bool) {
	m, ok := c.Load(name)
	if !ok {
		return nil, false
	}
	return m.Copy(), true
}

// Preload warms the cache for the given identifiers concurrently. Base
// asset loads are independent and read-only, so this is safe; absent
// assets are recorded, not reported as errors.
func (c *Cache) Preload(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Load(name)
			return nil
		})
	}
	return g.Wait()
}

// read resolves the identifier against the known store locations and
// parses the first file that exists.
func (c *Cache) read(name string) *mesh.Mesh {
	candidates := []string{
		filepath.Join(c.dir, name+".glb"),
		filepath.Join(c.dir, "furniture", name+".glb"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		m, err := scene.LoadMeshGLB(path)
		if err != nil {
			log.Printf("assets: failed to load %s: %v", path, err)
			return nil
		}
		return m
	}
	log.Printf("assets: no file for %q, using procedural fallback", name)
	return nil
}
