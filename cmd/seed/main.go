package main

import (
	"context"
	"log"

	"ai-interview-be/internal/config"
	"ai-interview-be/internal/model"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/internal/service"
	"ai-interview-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		log.Fatalf("Error: %v", err)
	}

	topics := service.NewTopicService(unitofwork.NewRepositoryFactory(db))
	n, err := topics.Seed(context.Background())
	if err != nil {
		log.Fatalf("Error: Failed to seed topics: %v", err)
	}
	if n == 0 {
		log.Println("Topics already present, nothing to do")
		return
	}
	log.Printf("✅ Seeded %d interview topics", n)
}
