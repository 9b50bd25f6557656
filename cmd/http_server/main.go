package main

import (
	"os"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/controllers"
)

func main() {
	baseDir := os.Getenv("BASE_DIR")
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalf("[Main] cannot resolve working directory: %v", err)
		}
		baseDir = wd
	}

	cfg, err := config.LoadFromEnv(baseDir)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if err := cfg.Validate(); err != nil {
		// Record endpoints stay usable; /generate reports the problem per request.
		log.Warnf("[Main] %v", err)
	}

	app := controllers.App{}
	app.Initialize(cfg)
	app.RunServer()
}
