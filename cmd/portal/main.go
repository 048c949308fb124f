package main

import (
	"log"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/app"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
