// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/config"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/database"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

// Cria a conta admin inicial. Email e senha vêm de ADMIN_EMAIL/ADMIN_SENHA.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg)

	email := os.Getenv("ADMIN_EMAIL")
	senha := os.Getenv("ADMIN_SENHA")
	if email == "" || senha == "" {
		log.Fatal("defina ADMIN_EMAIL e ADMIN_SENHA no ambiente")
	}

	var existente models.User
	err := db.Where("email = ?", email).First(&existente).Error
	if err == nil {
		fmt.Println("admin já existe:", email)
		os.Exit(0)
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query users: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		Email:       email,
		SenhaHash:   string(hash),
		TipoUsuario: models.TipoAdmin,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin criado com sucesso:", email)
}
