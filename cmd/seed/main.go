package main

import (
	"context"
	"log"
	"time"

	"techblog/configs"
	"techblog/configs/database"
	"techblog/internal/ports/models"
	"techblog/internal/server/repository"

	"golang.org/x/crypto/bcrypt"
)

var seedTags = map[string]string{
	"go":         "The Go programming language.",
	"javascript": "High-level language of the web.",
	"databases":  "Relational and document database questions.",
	"devops":     "Build, deploy and run software.",
	"testing":    "Automated testing practices and tooling.",
}

func main() {
	cfg := configs.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mysqlDB, err := database.NewMySQLConnection(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	if err := mysqlDB.AutoMigrate(&models.User{}, &models.ReputationEntry{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	mongoDB, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close(ctx)

	userRepo := repository.NewUserRepository(mysqlDB)
	if _, err := userRepo.FindByEmail(ctx, "admin@techblog.local"); err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Hashing failed: %v", err)
		}
		admin := &models.User{
			Username:  "admin",
			Email:     "admin@techblog.local",
			Password:  string(hashed),
			IsAdmin:   true,
			IsActive:  true,
			LastLogin: time.Now().UTC(),
		}
		if err := userRepo.CreateUser(ctx, admin); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Println("Seeded admin user admin@techblog.local")
	}

	tagRepo := repository.NewTagRepository(mongoDB.DB)
	for name, definition := range seedTags {
		if err := tagRepo.Upsert(ctx, &models.Tag{Name: name, Definition: definition}); err != nil {
			log.Fatalf("Failed to seed tag %q: %v", name, err)
		}
	}
	log.Printf("Seeded %d tags", len(seedTags))
}
