// Command reset-password resets a user's password from the command line,
// for recovering access when the admin account is locked out.
package main

import (
	"flag"
	"log"

	"go-stocktrack/internal/config"
	"go-stocktrack/internal/model"
	"go-stocktrack/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "admin@example.com", "email of the user to reset")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database.DSN(), database.Pool{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("user %s not found: %v", *email, err)
	}

	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// Clearing the token version invalidates existing sessions.
	updates := map[string]interface{}{
		"password":      user.Password,
		"token_version": "",
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Fatalf("failed to update password: %v", err)
	}

	log.Printf("password for %s has been reset", *email)
}
