// Command floorwrightd serves the reconstruction engine over HTTP.
package main

import (
	"log"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"floorwright/pkg/config"
	"floorwright/pkg/jobs"
	"floorwright/pkg/server"
)

func main() {
	cfg := config.Load()

	store, err := jobs.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open job store: %v", err)
	}
	defer store.Close()

	srv := server.New(cfg, store)
	log.Printf("Starting Floorwright on :%s (env: %s, assets: %s)", cfg.Port, cfg.Environment, cfg.AssetsDir)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
