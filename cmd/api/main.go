package main

import (
	"database/sql"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"go-task-manager/backend/internal/config"
	"go-task-manager/backend/internal/database"
	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
	"go-task-manager/backend/internal/routes"
)

// seedDemoUser は開発用のデモユーザー (demo / password) を登録します。
// 既に存在する場合は何もしません。
func seedDemoUser(db *sql.DB) {
	userRepo := repositories.NewUserRepository(db)
	if _, err := userRepo.FindByUsername("demo"); err == nil {
		return
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		log.Printf("Failed to look up demo user: %v", err)
		return
	}

	hashedPassword, err := repositories.HashPassword("password")
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}
	demoUser := &models.User{Username: "demo", PasswordHash: hashedPassword}
	if _, err := userRepo.Create(demoUser); err != nil {
		log.Printf("Failed to seed demo user: %v", err)
		return
	}
	log.Println("Seeded demo user: demo / password")
}

func main() {
	// .env が無い環境 (コンテナなど) では環境変数をそのまま使う
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	db := database.InitDB(cfg)
	defer db.Close()

	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	seedDemoUser(db)

	r := routes.SetupRouter(db, []byte(cfg.JWTSecret), cfg.FrontendURL)

	log.Printf("Server listening on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
