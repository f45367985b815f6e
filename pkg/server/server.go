// Package server exposes the reconstruction engine over HTTP: submit a
// detection payload, get back a GLB model; list and re-download past jobs.
package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"floorwright/pkg/config"
	"floorwright/pkg/jobs"
)

type Server struct {
	cfg   *config.Config
	store *jobs.Store
	app   *fiber.App
}

// New wires routes and middleware and returns a ready-to-listen server.
func New(cfg *config.Config, store *jobs.Store) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Floorwright",
		BodyLimit:    32 * 1024 * 1024,
	})

	s := &Server{cfg: cfg, store: store, app: app}

	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health/live", s.Health)
	app.Get("/health/ready", s.Health)

	api := app.Group("/api/v1")
	api.Post("/reconstruct", s.Reconstruct)
	api.Get("/models/:file", s.Model)
	api.Get("/jobs", s.Jobs)
	api.Get("/jobs/:id", s.Job)

	return s
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured port.
func (s *Server) Listen() error {
	return s.app.Listen(fmt.Sprintf(":%s", s.cfg.Port))
}
