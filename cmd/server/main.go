package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shelterworks/petadopt/internal/config"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/server"
	"github.com/shelterworks/petadopt/pkg/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.IsDevelopment() {
		if err := seedAdminUser(db, cfg); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
		if err := seedPets(db); err != nil {
			log.Fatalf("failed to seed pets: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
	}

	srv := server.NewServer(cfg, db, redisClient)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Pet{},
		&entity.Application{},
		&entity.Question{},
		&entity.Choice{},
		&entity.QuestionnaireResponse{},
	)
}

func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", cfg.AdminEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("admin user already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         entity.RoleAdmin,
		Approved:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("admin user seeded: %s", cfg.AdminEmail)
	return nil
}

func seedPets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Pet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pets := []entity.Pet{
		{Name: "Larry", Species: "Dog", Breed: "Golden Retriever", Age: 3, Description: "Friendly and energetic.", Status: entity.PetAvailable},
		{Name: "Barry", Species: "Cat", Breed: "Siamese", Age: 2, Description: "Loves to cuddle.", Status: entity.PetAdopted},
		{Name: "Garry", Species: "Dog", Breed: "Beagle", Age: 4, Description: "Great with kids.", Status: entity.PetAvailable},
	}

	for _, pet := range pets {
		if err := db.Create(&pet).Error; err != nil {
			return err
		}
	}

	log.Println("sample pets seeded")
	return nil
}
