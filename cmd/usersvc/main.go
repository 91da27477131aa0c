package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Chandra-006/User-Management/internal/app"
	"github.com/Chandra-006/User-Management/internal/config"
)

func main() {
	// Missing .env is fine; deployments use real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
