package main

import (
	"log"

	"anoa.com/greencampus/internal/bootstrap"
	"anoa.com/greencampus/internal/config"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/server"
	"anoa.com/greencampus/pkg/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDefaultUsers(db); err != nil {
			log.Fatalf("failed to seed default users: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, leaderboard cache disabled")
	}

	srv := server.NewServer(cfg, db, redisClient)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.ResourceUsage{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizResult{},
		&model.Contribution{},
	)
}
