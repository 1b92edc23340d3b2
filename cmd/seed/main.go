package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"famify/internal/config"
	"famify/internal/database"
	"famify/internal/repository"
	"famify/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := seed.NewSeeder(
		repository.NewUserRepository(db),
		repository.NewFamilyRepository(db),
		repository.NewEventRepository(db),
		repository.NewTaskRepository(db),
		repository.NewListRepository(db),
		repository.NewMealPlanRepository(db),
		repository.NewReminderRepository(db),
		repository.NewNoteRepository(db),
		repository.NewPostRepository(db),
		repository.NewNotificationRepository(db),
		cfg.SeedDemoPassword,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := seeder.Run(ctx); err != nil {
		log.Printf("Seed failed: %v", err)
		os.Exit(1)
	}
}
