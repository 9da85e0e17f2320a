package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edumodules/internal/config"
	"edumodules/internal/db"
	"edumodules/internal/model"
	"edumodules/internal/repository"
)

// Seeds a superuser, a moderator and a regular user for local development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Module{}, &model.Lesson{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
		log.Println("SEED_PASSWORD not set, using default")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	seeds := []model.User{
		{
			Email:        "admin@example.com",
			PasswordHash: string(hashed),
			FirstName:    "Admin",
			IsSuperuser:  true,
			IsActive:     true,
		},
		{
			Email:        "moderator@example.com",
			PasswordHash: string(hashed),
			FirstName:    "Moderator",
			IsModerator:  true,
			IsActive:     true,
		},
		{
			Email:        "user@example.com",
			PasswordHash: string(hashed),
			FirstName:    "User",
			IsActive:     true,
		},
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, user := range seeds {
		_, err := userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			log.Printf("User %s already exists, skipping", user.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check user %s: %v", user.Email, err)
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Email, err)
		}
		log.Printf("Created user %s", user.Email)
		created++
	}

	log.Printf("Seed completed: %d users created", created)
}
