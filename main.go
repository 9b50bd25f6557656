package main

import (
	"os"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/controllers"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("[Main] cannot resolve working directory: %v", err)
	}

	cfg, err := config.LoadFromEnv(wd)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	app := controllers.App{}
	app.Initialize(cfg)
	app.RunServer()
}
