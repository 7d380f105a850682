package main

import (
	"errors"
	"log"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/auth"
	"github.com/beacon-dev/beacon/internal/config"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/beacon-dev/beacon/internal/router"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := auth.Init(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedAdmin(cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	r := router.NewRouter(cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin creates the operator account from ADMIN_EMAIL/ADMIN_PASSWORD on
// first run. Existing accounts are left untouched.
func seedAdmin(cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User

	err := db.DB.Where("email = ?", cfg.AdminEmail).First(&existing).Error

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", admin.Email)
	return nil
}
