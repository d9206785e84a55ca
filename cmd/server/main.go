package main

import (
	"log"

	"github.com/joho/godotenv"

	"cargas/internal/config"
	"cargas/ui"
)

func main() {
	// Local development keeps settings in a .env file; absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	server := ui.NewServer(cfg)
	log.Printf("Starting cargas on http://localhost:%s", cfg.Server.Port)
	log.Fatal(server.Start())
}
