package main

import (
	"log"

	"github.com/MrSnakeDoc/courtscan/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ courtscan failed to start: %v", err)
	}
}
