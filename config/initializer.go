package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads a .env file into the process environment when one exists.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
