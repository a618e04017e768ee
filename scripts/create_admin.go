// Bootstraps the first admin account. Run once after the database is
// up:
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=change-me go run ./scripts
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/config"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/database"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var existing models.User
	err = db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		fmt.Println("admin user already exists:", username)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("query users: %v", err)
	}

	u := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         "admin",
		Name:         "Administrator",
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("insert admin: %v", err)
	}
	fmt.Println("admin user created:", username)
}
