package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"inkwell/configs"
	"inkwell/database"
	_ "inkwell/docs"
	"inkwell/internal/repository"
	"inkwell/internal/routes"
)

// @title Inkwell API
// @version 1.0
// @description Blogging backend: registration, login, posts, likes, comments.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func init() {
	// values from .env override the environment
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := configs.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := routes.NewApp(routes.Deps{
		Users:     repository.NewUserRepository(db),
		Posts:     repository.NewPostRepository(db),
		Comments:  repository.NewCommentRepository(db),
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
