package main

import (
	"log"

	"techblog/internal/server"
)

// @title TechBlog API
// @version 1.0
// @description Q&A community REST API with voting and reputation.
// @BasePath /api/v1
func main() {
	application, err := server.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
