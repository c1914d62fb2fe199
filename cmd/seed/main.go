package main

import (
	"log"

	"xfood/internal/config"
	"xfood/internal/db"
	"xfood/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := seed.Ensure(gormDB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seed completed successfully!")
}
