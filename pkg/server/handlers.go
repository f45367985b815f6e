package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"floorwright/pkg/assets"
	"floorwright/pkg/build"
	"floorwright/pkg/jobs"
	"floorwright/pkg/plan"
)

// Health reports liveness.
func (s *Server) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Reconstruct runs one reconstruction job. The detection payload comes
// either as a multipart "plan" file or as the raw JSON body. Each job gets
// its own asset cache; nothing is shared across requests.
func (s *Server) Reconstruct(c fiber.Ctx) error {
	source := "inline"
	data := c.Body()
	if file, err := c.FormFile("plan"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to open uploaded file"})
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to read uploaded file"})
		}
		source = file.Filename
	}
	if len(data) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "detection payload required"})
	}

	p, furniture, err := plan.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[RECONSTRUCT] decode error: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	cache := assets.NewCache(s.cfg.AssetsDir)
	sc, err := build.Reconstruct(p, furniture, cache)
	if err != nil {
		log.Printf("[RECONSTRUCT] build error: %v", err)
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	}

	id := uuid.NewString()
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	outPath := filepath.Join(s.cfg.OutputDir, id+".glb")
	if err := sc.ExportGLB(outPath); err != nil {
		log.Printf("[RECONSTRUCT] export error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	// The model exists on disk at this point; a bookkeeping failure is
	// logged but does not fail the request.
	if err := s.store.Record(c.Context(), jobs.Job{
		ID:         id,
		Source:     source,
		Elements:   len(p.Elements),
		Nodes:      sc.Len(),
		OutputPath: outPath,
		CreatedAt:  time.Now(),
	}); err != nil {
		log.Printf("[RECONSTRUCT] record job %s: %v", id, err)
	}

	log.Printf("[RECONSTRUCT] job %s: %d elements -> %d nodes", id, len(p.Elements), sc.Len())
	return c.JSON(fiber.Map{
		"id":    id,
		"nodes": sc.Len(),
		"url":   "/api/v1/models/" + id + ".glb",
	})
}

// Model serves a previously generated GLB file by job ID.
func (s *Server) Model(c fiber.Ctx) error {
	name := c.Params("file")
	id := strings.TrimSuffix(name, ".glb")
	// IDs are UUIDs; rejecting anything else also rejects path traversal.
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid model id"})
	}

	path := filepath.Join(s.cfg.OutputDir, id+".glb")
	if _, err := os.Stat(path); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "model not found"})
	}
	c.Set("Content-Type", "model/gltf-binary")
	return c.SendFile(path)
}

// Job returns one past reconstruction by ID.
func (s *Server) Job(c fiber.Ctx) error {
	j, err := s.store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, jobs.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "job not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(j)
}

// Jobs lists past reconstructions, newest first.
func (s *Server) Jobs(c fiber.Ctx) error {
	list, err := s.store.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if list == nil {
		list = []jobs.Job{}
	}
	return c.JSON(list)
}
